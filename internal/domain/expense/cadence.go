// Package expense calcula a cadência das despesas recorrentes.
package expense

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type RepeatType string

const (
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
)

var (
	ErrInvalidRepeatType     = httperr.ErrBusiness("invalid_repeat_type")
	ErrInvalidRepeatInterval = httperr.ErrBusiness("invalid_repeat_interval")
)

func ValidateCadence(rt RepeatType, interval int) error {
	switch rt {
	case RepeatDaily, RepeatWeekly, RepeatMonthly:
	default:
		return ErrInvalidRepeatType
	}
	if interval <= 0 {
		return ErrInvalidRepeatInterval
	}
	return nil
}

// Advance soma interval unidades de rt a t, no fuso loc. No mensal o dia
// alvo é anchorDay (0 usa o dia local de t), caindo no último dia do mês
// quando ele não existe: âncora 31 dá 31/jan, 29/fev, 31/mar.
func Advance(t time.Time, rt RepeatType, interval, anchorDay int, loc *time.Location) (time.Time, error) {
	if err := ValidateCadence(rt, interval); err != nil {
		return time.Time{}, err
	}

	local := t.In(loc)

	switch rt {
	case RepeatDaily:
		return local.AddDate(0, 0, interval).UTC(), nil
	case RepeatWeekly:
		return local.AddDate(0, 0, 7*interval).UTC(), nil
	default:
		if anchorDay <= 0 {
			anchorDay = local.Day()
		}
		return addMonthsClamped(local, interval, anchorDay).UTC(), nil
	}
}

func addMonthsClamped(t time.Time, months, day int) time.Time {
	y, m, _ := t.Date()

	// dia 0 do mês seguinte = último dia do mês alvo
	lastDay := time.Date(y, m+time.Month(months)+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(y, m+time.Month(months), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
