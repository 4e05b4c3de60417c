package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type RejectAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewRejectAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *RejectAppointment {
	return &RejectAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RejectAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	adminID *uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointmentForUpdate(ctx, barbershopID, appointmentID)
		if err != nil {
			return err
		}

		if err := domain.Reject(ap); err != nil {
			return err
		}

		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	metrics.AppointmentTransitions.WithLabelValues(ap.Status).Inc()
	uc.audit.Record(appointmentEvent(ap, ActorAdmin, adminID, "appointment_rejected", "", nil))

	return ap, nil
}
