package appointment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
	"github.com/BruksfildServices01/barber-booking/internal/sms"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

const SmsKindOverrideCancel = "override_cancel"

type Notifier interface {
	Notify(ctx context.Context, msg sms.Message) bool
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateOverrideInput struct {
	BarbershopID uint
	BarberID     uint
	AdminID      *uint

	Date      string
	StartTime string
	EndTime   string
	Reason    string
}

// NotifyOutcome é o resultado dos avisos enviados depois do commit.
type NotifyOutcome struct {
	Attempted int    `json:"attempted"`
	Sent      int    `json:"sent"`
	FailedIDs []uint `json:"failed_ids"`
}

type OverrideResult struct {
	Override      *models.WorkingHourOverride `json:"override"`
	CancelledIDs  []uint                      `json:"cancelled_ids"`
	Notifications NotifyOutcome               `json:"notifications"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateOverride struct {
	repo     domain.Repository
	audit    audit.Recorder
	notifier Notifier
	clock    clock.Clock
}

func NewCreateOverride(
	repo domain.Repository,
	audit audit.Recorder,
	notifier Notifier,
	clk clock.Clock,
) *CreateOverride {
	return &CreateOverride{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		clock:    clk,
	}
}

// Execute grava o fechamento e cancela, na mesma transação, todo pedido
// ativo que ele atinge. Os SMS saem depois do commit e não desfazem nada.
func (uc *CreateOverride) Execute(
	ctx context.Context,
	in CreateOverrideInput,
) (*OverrideResult, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	if _, err := timeofday.ParseDate(in.Date); err != nil {
		return nil, err
	}
	window, err := domain.NewInterval(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if !window.Valid() {
		return nil, domain.ErrInvalidRange
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Fechamento + cancelamentos (tudo ou nada)
	// --------------------------------------------------
	override := &models.WorkingHourOverride{
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		Date:         in.Date,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Reason:       in.Reason,
		CreatedBy:    in.AdminID,
	}

	var cancelled []*models.Appointment
	now := uc.clock.Now()

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateOverride(ctx, override); err != nil {
			return err
		}

		active, err := tx.ListActiveAppointmentsForDay(ctx, in.BarbershopID, in.BarberID, in.Date, true)
		if err != nil {
			return err
		}

		affected, err := domain.ComputeAffectedAppointments(in.BarberID, in.Date, in.StartTime, in.EndTime, active)
		if err != nil {
			return err
		}

		cancelled, err = cancelMany(ctx, tx, in.BarbershopID, affected, domain.CancelledByAdmin, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &OverrideResult{
		Override:     override,
		CancelledIDs: make([]uint, 0, len(cancelled)),
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	overrideID := override.ID
	uc.audit.Record(audit.Event{
		BarbershopID: in.BarbershopID,
		Actor:        ActorAdmin,
		UserID:       in.AdminID,
		Action:       "override_created",
		Entity:       "working_hour_override",
		EntityID:     &overrideID,
		Summary:      fmt.Sprintf("%s %s-%s", in.Date, in.StartTime, in.EndTime),
		Metadata:     map[string]any{"cancelled": len(cancelled), "reason": in.Reason},
	})

	for _, ap := range cancelled {
		result.CancelledIDs = append(result.CancelledIDs, ap.ID)
		metrics.AppointmentTransitions.WithLabelValues(ap.Status).Inc()
		metrics.OverrideCancellations.Inc()
		uc.audit.Record(appointmentEvent(
			ap, ActorAdmin, in.AdminID,
			"appointment_cancelled",
			"override",
			map[string]any{"override_id": overrideID},
		))
	}

	// --------------------------------------------------
	// 4️⃣ Avisos (best effort)
	// --------------------------------------------------
	result.Notifications = uc.notify(ctx, shop, cancelled)

	if result.Notifications.Sent != len(result.CancelledIDs) {
		slog.WarnContext(ctx, "override notifications mismatch",
			"barbershop_id", in.BarbershopID,
			"override_id", overrideID,
			"cancelled", len(result.CancelledIDs),
			"notified", result.Notifications.Sent,
		)
	}

	return result, nil
}

func (uc *CreateOverride) notify(
	ctx context.Context,
	shop *models.Barbershop,
	cancelled []*models.Appointment,
) NotifyOutcome {

	out := NotifyOutcome{FailedIDs: []uint{}}
	if uc.notifier == nil {
		return out
	}

	for _, ap := range cancelled {
		out.Attempted++

		id := ap.ID
		ok := uc.notifier.Notify(ctx, sms.Message{
			BarbershopID:  ap.BarbershopID,
			AppointmentID: &id,
			Kind:          SmsKindOverrideCancel,
			To:            ap.ClientPhone,
			Body:          overrideCancelMessage(shop, ap),
		})

		if ok {
			out.Sent++
		} else {
			out.FailedIDs = append(out.FailedIDs, ap.ID)
		}
	}

	return out
}

func overrideCancelMessage(shop *models.Barbershop, ap *models.Appointment) string {
	return fmt.Sprintf(
		"%s: seu horário de %s às %s foi cancelado pela barbearia. Agende um novo horário pelo nosso link.",
		shop.Name, ap.Date, ap.RequestedStartTime,
	)
}
