package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	day, err := timeofday.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return []domain.TimeSlot{}, nil
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if wh == nil || !wh.Active {
		return []domain.TimeSlot{}, nil
	}

	overrides, err := uc.repo.ListOverridesForDay(ctx, in.BarbershopID, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListActiveAppointmentsForDay(ctx, in.BarbershopID, in.BarberID, in.Date, false)
	if err != nil {
		return nil, err
	}

	slotMinutes := in.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = domain.DefaultDuration
	}

	return domain.FreeSlots(wh, overrides, appointments, slotMinutes)
}
