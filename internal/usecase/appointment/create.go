package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string

	Date      string
	StartTime string
	EndTime   *string

	SubscriptionID *uint
	Notes          string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	audit     audit.Recorder
	clock     clock.Clock
	utcOffset int
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	clk clock.Clock,
	utcOffset int,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		audit:     audit,
		clock:     clk,
		utcOffset: utcOffset,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Validação de formato e intervalo
	// --------------------------------------------------
	ap, err := domain.NewAppointment(domain.NewAppointmentInput{
		BarbershopID:   in.BarbershopID,
		BarberID:       in.BarberID,
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		SubscriptionID: in.SubscriptionID,
		Notes:          in.Notes,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Não aceita horário que já passou
	// --------------------------------------------------
	start, err := domain.StartInstant(ap, uc.utcOffset)
	if err != nil {
		return nil, err
	}
	if !start.After(uc.clock.Now()) {
		return nil, domain.ErrTooSoon
	}

	// --------------------------------------------------
	// 3️⃣ Barbeiro ativo da barbearia
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, domain.ErrBarberNotFound
	}

	candidate, err := domain.OccupiedInterval(ap)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Conflito + fechamento + criação (mesma transação)
	// --------------------------------------------------
	var rejected domain.Decision
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		existing, err := tx.ListActiveAppointmentsForDay(ctx, in.BarbershopID, in.BarberID, in.Date, true)
		if err != nil {
			return err
		}

		decision, err := domain.CheckIntervalAvailability(in.BarberID, in.Date, candidate, existing)
		if err != nil {
			return err
		}
		if !decision.Accepted {
			rejected = decision
			return decision.Err()
		}

		overrides, err := tx.ListOverridesForDay(ctx, in.BarbershopID, in.BarberID, in.Date)
		if err != nil {
			return err
		}

		decision, err = domain.CheckIntervalOverrides(in.BarberID, in.Date, candidate, overrides)
		if err != nil {
			return err
		}
		if !decision.Accepted {
			rejected = decision
			return decision.Err()
		}

		return tx.CreateAppointment(ctx, ap)
	})

	if rejected.Reason != "" {
		metrics.BookingRejections.WithLabelValues(string(rejected.Reason)).Inc()
		uc.audit.Record(audit.Event{
			BarbershopID: in.BarbershopID,
			Actor:        ActorCustomer,
			Action:       "appointment_rejected_on_admission",
			Entity:       "appointment",
			Summary:      fmt.Sprintf("%s %s %s", rejected.Reason, in.Date, in.StartTime),
			Metadata:     map[string]any{"conflicting_ids": rejected.ConflictingIDs},
		})
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	metrics.AppointmentTransitions.WithLabelValues(ap.Status).Inc()
	uc.audit.Record(appointmentEvent(
		ap, ActorCustomer, nil,
		"appointment_created",
		fmt.Sprintf("%s %s", ap.Date, ap.RequestedStartTime),
		nil,
	))

	return ap, nil
}
