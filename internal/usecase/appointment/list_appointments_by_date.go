package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute lista o dia inteiro da barbearia; barberID 0 traz todos os barbeiros.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := timeofday.ParseDate(date); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, barbershopID, barberID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, ToListDTO(&appointments[i]))
	}

	return out, nil
}

type ListOverrides struct {
	repo domain.Repository
}

func NewListOverrides(repo domain.Repository) *ListOverrides {
	return &ListOverrides{repo: repo}
}

func (uc *ListOverrides) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date string,
) ([]models.WorkingHourOverride, error) {

	if _, err := timeofday.ParseDate(date); err != nil {
		return nil, err
	}
	return uc.repo.ListOverridesForDay(ctx, barbershopID, barberID, date)
}
