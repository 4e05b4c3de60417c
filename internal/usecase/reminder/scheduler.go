package reminder

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/reminder"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
	"github.com/BruksfildServices01/barber-booking/internal/settings"
	"github.com/BruksfildServices01/barber-booking/internal/sms"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

const (
	JobName = "reminders"
	SmsKind = "reminder"
)

type TierCount struct {
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Duplicate int `json:"duplicate"`
}

type Summary struct {
	Candidates int                  `json:"candidates"`
	Excluded   int                  `json:"excluded"`
	Tiers      map[string]TierCount `json:"tiers"`
	Errors     int                  `json:"errors"`
}

func (s Summary) errorCount() int {
	n := s.Errors
	for _, c := range s.Tiers {
		n += c.Failed
	}
	return n
}

type Scheduler struct {
	repo      Repository
	settings  settings.Provider
	sender    sms.Sender
	clock     clock.Clock
	utcOffset int
	logger    *slog.Logger
}

func NewScheduler(
	repo Repository,
	provider settings.Provider,
	sender sms.Sender,
	clk clock.Clock,
	utcOffset int,
	logger *slog.Logger,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		repo:      repo,
		settings:  provider,
		sender:    sender,
		clock:     clk,
		utcOffset: utcOffset,
		logger:    logger.With("job", JobName),
	}
}

// RunOnce envia os lembretes devidos agora. Só devolve erro quando a lista
// de candidatos não pode ser lida; falhas por item entram no resumo.
func (s *Scheduler) RunOnce(ctx context.Context, barbershopID uint) (Summary, error) {
	begin := time.Now()
	defer func() {
		metrics.JobDuration.WithLabelValues(JobName).Observe(time.Since(begin).Seconds())
	}()

	startedAt := s.clock.Now()

	sum := Summary{Tiers: map[string]TierCount{}}
	now := startedAt

	cfg, err := s.settings.Get(ctx, barbershopID)
	if err != nil {
		sum.Errors++
		s.logger.WarnContext(ctx, "settings unavailable, custom reminder disabled",
			"barbershop_id", barbershopID, "error", err)
		cfg = settings.Settings{}
	}

	customHours, _ := cfg.CustomHours()
	tiers := reminder.Tiers(customHours)

	horizon := now.Add(time.Duration(settings.MaxCustomReminderHours)*time.Hour + reminder.Tolerance)
	candidates, err := s.repo.ListApprovedBetween(
		ctx,
		barbershopID,
		timeofday.CivilDate(now, s.utcOffset),
		timeofday.CivilDate(horizon, s.utcOffset),
	)
	if err != nil {
		return sum, err
	}

	for i := range candidates {
		ap := &candidates[i]

		start, err := domain.StartInstant(ap, s.utcOffset)
		if err != nil {
			sum.Errors++
			s.logger.WarnContext(ctx, "bad appointment start", "appointment_id", ap.ID, "error", err)
			continue
		}
		if !start.After(now) {
			continue
		}
		sum.Candidates++

		if ap.ClientPhone == "" || sms.SamePhone(ap.ClientPhone, cfg.AdminPhone) {
			sum.Excluded++
			continue
		}

		startHM := ap.RequestedStartTime
		if ap.ConfirmedSlot != nil {
			startHM = ap.ConfirmedSlot.StartTime
		}

		for _, tier := range tiers {
			if !tier.Due(start, now) {
				continue
			}
			outcome := s.dispatch(ctx, ap, tier, startHM)

			c := sum.Tiers[tier.Name]
			switch outcome {
			case outcomeSent:
				c.Sent++
			case outcomeFailed:
				c.Failed++
			case outcomeDuplicate:
				c.Duplicate++
			case outcomeError:
				sum.Errors++
			}
			sum.Tiers[tier.Name] = c

			metrics.RemindersDispatched.WithLabelValues(tier.Name, string(outcome)).Inc()
		}
	}

	s.saveRun(ctx, barbershopID, startedAt, sum)

	s.logger.InfoContext(ctx, "reminder run finished",
		"barbershop_id", barbershopID,
		"candidates", sum.Candidates,
		"excluded", sum.Excluded,
		"errors", sum.errorCount(),
	)

	return sum, nil
}

type outcome string

const (
	outcomeSent      outcome = "sent"
	outcomeFailed    outcome = "failed"
	outcomeDuplicate outcome = "duplicate"
	outcomeError     outcome = "error"
)

// dispatch reserva a chave antes de enviar; um envio que falhou fica
// registrado como failed e nunca é repetido.
func (s *Scheduler) dispatch(
	ctx context.Context,
	ap *models.Appointment,
	tier reminder.Tier,
	startHM string,
) outcome {

	key := reminder.DedupKey(tier.Name, ap.ID)
	id := ap.ID

	rec := &models.SmsLog{
		BarbershopID:  ap.BarbershopID,
		AppointmentID: &id,
		Kind:          SmsKind + "_" + tier.Name,
		DedupKey:      &key,
		Phone:         ap.ClientPhone,
		Message:       reminder.Message(tier, ap.Date, startHM),
		Status:        models.SmsStatusPending,
	}

	claimed, err := s.repo.ClaimDispatch(ctx, rec)
	if err != nil {
		s.logger.WarnContext(ctx, "reminder claim failed", "dedup_key", key, "error", err)
		return outcomeError
	}
	if !claimed {
		return outcomeDuplicate
	}

	result := outcomeSent
	rec.Status = models.SmsStatusSent
	if err := s.sender.Send(ctx, rec.Phone, rec.Message); err != nil {
		result = outcomeFailed
		rec.Status = models.SmsStatusFailed
		rec.Error = err.Error()
		s.logger.WarnContext(ctx, "reminder send failed", "dedup_key", key, "error", err)
	}
	metrics.SmsSent.WithLabelValues(rec.Kind, rec.Status).Inc()

	if err := s.repo.UpdateDispatch(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "reminder record update failed", "dedup_key", key, "error", err)
	}

	return result
}

func (s *Scheduler) saveRun(ctx context.Context, barbershopID uint, startedAt time.Time, sum Summary) {
	payload, err := json.Marshal(sum)
	if err != nil {
		s.logger.WarnContext(ctx, "job summary encode failed", "error", err)
		return
	}

	run := &models.JobRun{
		ID:           uuid.NewString(),
		Job:          JobName,
		BarbershopID: barbershopID,
		StartedAt:    startedAt,
		FinishedAt:   s.clock.Now(),
		Summary:      string(payload),
		ErrorCount:   sum.errorCount(),
	}

	if err := s.repo.SaveJobRun(ctx, run); err != nil {
		s.logger.WarnContext(ctx, "job summary write failed", "barbershop_id", barbershopID, "error", err)
	}
}
