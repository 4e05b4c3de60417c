package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ApproveAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewApproveAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *ApproveAppointment {
	return &ApproveAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute aprova o pedido e grava o slot confirmado. O intervalo confirmado é
// conferido, com as linhas do dia bloqueadas, contra os outros aprovados do
// barbeiro e contra os fechamentos.
func (uc *ApproveAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	adminID *uint,
	appointmentID uint,
	confirmedStart string,
	confirmedEnd string,
) (*models.Appointment, error) {

	var ap *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointmentForUpdate(ctx, barbershopID, appointmentID)
		if err != nil {
			return err
		}

		slot, err := domain.Approve(ap, confirmedStart, confirmedEnd)
		if err != nil {
			return err
		}

		sameDay, err := tx.ListActiveAppointmentsForDay(ctx, barbershopID, ap.BarberID, ap.Date, true)
		if err != nil {
			return err
		}

		approved := make([]models.Appointment, 0, len(sameDay))
		for _, other := range sameDay {
			if other.ID != ap.ID && domain.Status(other.Status) == domain.StatusApproved {
				approved = append(approved, other)
			}
		}

		decision, err := domain.CheckAvailability(ap.BarberID, ap.Date, confirmedStart, confirmedEnd, approved)
		if err != nil {
			return err
		}
		if !decision.Accepted {
			return decision.Err()
		}

		overrides, err := tx.ListOverridesForDay(ctx, barbershopID, ap.BarberID, ap.Date)
		if err != nil {
			return err
		}
		decision, err = domain.CheckOverrides(ap.BarberID, ap.Date, confirmedStart, confirmedEnd, overrides)
		if err != nil {
			return err
		}
		if !decision.Accepted {
			return decision.Err()
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}
		return tx.CreateConfirmedSlot(ctx, slot)
	})
	if err != nil {
		return nil, err
	}

	metrics.AppointmentTransitions.WithLabelValues(ap.Status).Inc()
	uc.audit.Record(appointmentEvent(
		ap, ActorAdmin, adminID,
		"appointment_approved",
		fmt.Sprintf("%s %s-%s", ap.Date, confirmedStart, confirmedEnd),
		nil,
	))

	return ap, nil
}
