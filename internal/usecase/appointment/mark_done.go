package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

const JobMarkDone = "mark_done"

type SweepSummary struct {
	Checked int `json:"checked"`
	Done    int `json:"done"`
	Errors  int `json:"errors"`
}

// MarkDoneSweep encerra aprovados cujo início já passou. Roda pelo worker,
// nunca por ação de usuário.
type MarkDoneSweep struct {
	repo      domain.Repository
	audit     audit.Recorder
	clock     clock.Clock
	utcOffset int
}

func NewMarkDoneSweep(
	repo domain.Repository,
	audit audit.Recorder,
	clk clock.Clock,
	utcOffset int,
) *MarkDoneSweep {
	return &MarkDoneSweep{
		repo:      repo,
		audit:     audit,
		clock:     clk,
		utcOffset: utcOffset,
	}
}

func (uc *MarkDoneSweep) RunOnce(ctx context.Context, barbershopID uint) (SweepSummary, error) {
	var sum SweepSummary

	now := uc.clock.Now()
	today := timeofday.CivilDate(now, uc.utcOffset)

	candidates, err := uc.repo.ListApprovedUpTo(ctx, barbershopID, today)
	if err != nil {
		return sum, err
	}

	for i := range candidates {
		ap := &candidates[i]

		start, err := domain.StartInstant(ap, uc.utcOffset)
		if err != nil {
			sum.Errors++
			slog.WarnContext(ctx, "mark done: bad start", "appointment_id", ap.ID, "error", err)
			continue
		}
		if !start.Before(now) {
			continue
		}

		sum.Checked++
		done, err := uc.markOne(ctx, barbershopID, ap.ID, now)
		if err != nil {
			sum.Errors++
			metrics.JobErrors.WithLabelValues(JobMarkDone).Inc()
			slog.WarnContext(ctx, "mark done failed", "appointment_id", ap.ID, "error", err)
			continue
		}

		sum.Done++
		metrics.AppointmentTransitions.WithLabelValues(done.Status).Inc()
		uc.audit.Record(appointmentEvent(done, ActorSystem, nil, "appointment_done", "", nil))
	}

	return sum, nil
}

func (uc *MarkDoneSweep) markOne(
	ctx context.Context,
	barbershopID uint,
	appointmentID uint,
	now time.Time,
) (*models.Appointment, error) {

	var ap *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointmentForUpdate(ctx, barbershopID, appointmentID)
		if err != nil {
			return err
		}

		start, err := domain.StartInstant(ap, uc.utcOffset)
		if err != nil {
			return err
		}
		if err := domain.MarkDone(ap, start, now); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}
		return tx.DeleteConfirmedSlot(ctx, ap.ID)
	})

	return ap, err
}
