package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
	"github.com/BruksfildServices01/barber-booking/internal/sms"
)

type CancelInput struct {
	BarbershopID  uint
	AppointmentID uint
	By            domain.CancelledBy

	// Admin que cancelou; nil para o cliente.
	AdminID *uint

	// Telefone informado pelo cliente; precisa bater com o do pedido.
	ClientPhone string
}

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
	clock clock.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	clk clock.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelInput,
) (*models.Appointment, error) {

	if !domain.ValidCancelledBy(in.By) {
		return nil, domain.ErrInvalidActor
	}

	var ap *models.Appointment
	now := uc.clock.Now()

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if in.By == domain.CancelledByCustomer {
			current, err := tx.GetAppointment(ctx, in.BarbershopID, in.AppointmentID)
			if err != nil {
				return err
			}
			// Não revela a existência do pedido para quem não é o dono.
			if !sms.SamePhone(current.ClientPhone, in.ClientPhone) {
				return domain.ErrAppointmentNotFound
			}
		}

		var err error
		ap, err = cancelOne(ctx, tx, in.BarbershopID, in.AppointmentID, in.By, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	actor := ActorAdmin
	if in.By == domain.CancelledByCustomer {
		actor = ActorCustomer
	}

	metrics.AppointmentTransitions.WithLabelValues(ap.Status).Inc()
	uc.audit.Record(appointmentEvent(ap, actor, in.AdminID, "appointment_cancelled", "", nil))

	return ap, nil
}

// cancelOne cancela e apaga o slot confirmado usando a transação recebida.
func cancelOne(
	ctx context.Context,
	tx domain.Repository,
	barbershopID uint,
	appointmentID uint,
	by domain.CancelledBy,
	now time.Time,
) (*models.Appointment, error) {

	ap, err := tx.GetAppointmentForUpdate(ctx, barbershopID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, by, now); err != nil {
		return nil, err
	}

	if err := tx.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	if err := tx.DeleteConfirmedSlot(ctx, ap.ID); err != nil {
		return nil, err
	}

	return ap, nil
}
