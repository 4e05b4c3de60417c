package expense

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/expense"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
)

const JobName = "recurring_expenses"

type Summary struct {
	Processed   int `json:"processed"`
	Created     int `json:"created"`
	Deactivated int `json:"deactivated"`
	Skipped     int `json:"skipped"`
	Errors      int `json:"errors"`
}

// Roller materializa uma ocorrência por definição devida a cada rodada.
// Ocorrências atrasadas saem nas rodadas seguintes, uma por vez.
type Roller struct {
	repo      Repository
	clock     clock.Clock
	utcOffset int
	logger    *slog.Logger
}

func NewRoller(
	repo Repository,
	clk clock.Clock,
	utcOffset int,
	logger *slog.Logger,
) *Roller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Roller{
		repo:      repo,
		clock:     clk,
		utcOffset: utcOffset,
		logger:    logger.With("job", JobName),
	}
}

func (r *Roller) RunOnce(ctx context.Context, barbershopID uint) (Summary, error) {
	begin := time.Now()
	defer func() {
		metrics.JobDuration.WithLabelValues(JobName).Observe(time.Since(begin).Seconds())
	}()

	var sum Summary
	now := r.clock.Now()

	ids, err := r.repo.ListDueIDs(ctx, barbershopID, now)
	if err != nil {
		return sum, err
	}

	for _, id := range ids {
		sum.Processed++

		res, err := r.rollOne(ctx, barbershopID, id, now)
		if err != nil {
			sum.Errors++
			metrics.JobErrors.WithLabelValues(JobName).Inc()
			r.logger.WarnContext(ctx, "recurring expense roll failed",
				"barbershop_id", barbershopID,
				"recurring_expense_id", id,
				"error", err,
			)
			continue
		}

		switch {
		case res.skipped:
			sum.Skipped++
		default:
			if res.created {
				sum.Created++
				metrics.ExpensesCreated.Inc()
			}
			if res.deactivated {
				sum.Deactivated++
			}
		}
	}

	r.saveRun(ctx, barbershopID, now, sum)

	r.logger.InfoContext(ctx, "recurring expense run finished",
		"barbershop_id", barbershopID,
		"processed", sum.Processed,
		"created", sum.Created,
		"deactivated", sum.Deactivated,
		"errors", sum.Errors,
	)

	return sum, nil
}

type rollResult struct {
	created     bool
	deactivated bool
	skipped     bool
}

// rollOne grava despesa e novo cursor na mesma transação, com a definição
// bloqueada; se outra execução já avançou o cursor, não faz nada.
func (r *Roller) rollOne(ctx context.Context, barbershopID, id uint, now time.Time) (rollResult, error) {
	var res rollResult

	err := r.repo.Transaction(ctx, func(tx Repository) error {
		def, err := tx.GetRecurringForUpdate(ctx, barbershopID, id)
		if err != nil {
			return err
		}

		if !def.IsActive || def.NextRunAt.After(now) {
			res.skipped = true
			return nil
		}

		step, err := domain.Roll(def, r.utcOffset)
		if err != nil {
			return err
		}

		if step.Expense != nil {
			if err := tx.CreateExpense(ctx, step.Expense); err != nil {
				return err
			}
			res.created = true
		}

		def.NextRunAt = step.NextRunAt
		if step.Deactivate {
			def.IsActive = false
			res.deactivated = true
		}

		return tx.UpdateRecurring(ctx, def)
	})

	return res, err
}

func (r *Roller) saveRun(ctx context.Context, barbershopID uint, startedAt time.Time, sum Summary) {
	payload, err := json.Marshal(sum)
	if err != nil {
		r.logger.WarnContext(ctx, "job summary encode failed", "error", err)
		return
	}

	run := &models.JobRun{
		ID:           uuid.NewString(),
		Job:          JobName,
		BarbershopID: barbershopID,
		StartedAt:    startedAt,
		FinishedAt:   r.clock.Now(),
		Summary:      string(payload),
		ErrorCount:   sum.Errors,
	}

	if err := r.repo.SaveJobRun(ctx, run); err != nil {
		r.logger.WarnContext(ctx, "job summary write failed", "barbershop_id", barbershopID, "error", err)
	}
}
