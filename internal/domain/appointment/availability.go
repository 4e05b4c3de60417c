package appointment

import (
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	Date         string
	SlotMinutes  int
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots fatia o expediente em slots de slotMinutes e remove os que
// batem com almoço, fechamentos ou horários ocupados.
func FreeSlots(
	wh *models.WorkingHours,
	overrides []models.WorkingHourOverride,
	appointments []models.Appointment,
	slotMinutes int,
) ([]TimeSlot, error) {

	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" || slotMinutes <= 0 {
		return []TimeSlot{}, nil
	}

	day, err := NewInterval(wh.StartTime, wh.EndTime)
	if err != nil {
		return nil, err
	}

	var blocked []Interval

	if wh.LunchStart != "" && wh.LunchEnd != "" {
		lunch, err := NewInterval(wh.LunchStart, wh.LunchEnd)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, lunch)
	}

	for _, o := range overrides {
		closed, err := NewInterval(o.StartTime, o.EndTime)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, closed)
	}

	for i := range appointments {
		if !Status(appointments[i].Status).IsActive() {
			continue
		}
		occupied, err := OccupiedInterval(&appointments[i])
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, occupied)
	}

	slots := []TimeSlot{}
	for cur := day.Start; cur+slotMinutes <= day.End; cur += slotMinutes {
		slot := Interval{Start: cur, End: cur + slotMinutes}

		free := true
		for _, b := range blocked {
			if slot.Overlaps(b) {
				free = false
				break
			}
		}
		if !free {
			continue
		}

		start, err := timeofday.MinutesToTime(slot.Start)
		if err != nil {
			return nil, err
		}
		end, err := timeofday.MinutesToTime(slot.End)
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeSlot{Start: start, End: end})
	}

	return slots, nil
}
