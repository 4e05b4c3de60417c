package appointment

import "github.com/BruksfildServices01/barber-booking/internal/timeofday"

// Interval é um intervalo semiaberto [Start, End) em minutos do dia.
type Interval struct {
	Start int
	End   int
}

func NewInterval(start, end string) (Interval, error) {
	s, err := timeofday.ParseTimeToMinutes(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := timeofday.ParseTimeToMinutes(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

func (i Interval) Valid() bool {
	return i.Start < i.End
}

// Overlaps: intervalos que apenas se tocam na borda não se sobrepõem.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

func Overlaps(startA, endA, startB, endB string) (bool, error) {
	a, err := NewInterval(startA, endA)
	if err != nil {
		return false, err
	}
	b, err := NewInterval(startB, endB)
	if err != nil {
		return false, err
	}
	return a.Overlaps(b), nil
}
