// Package worker roda os jobs periódicos para cada barbearia.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/lock"
)

type ShopLister interface {
	ListIDs(ctx context.Context) ([]uint, error)
}

// Job é uma rodada idempotente para uma barbearia.
type Job struct {
	Name string
	Run  func(ctx context.Context, barbershopID uint) error
}

type Runner struct {
	shops   ShopLister
	locker  lock.Locker
	lockTTL time.Duration
	jobs    []Job
	logger  *slog.Logger
}

func NewRunner(
	shops ShopLister,
	locker lock.Locker,
	lockTTL time.Duration,
	logger *slog.Logger,
	jobs ...Job,
) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		shops:   shops,
		locker:  locker,
		lockTTL: lockTTL,
		jobs:    jobs,
		logger:  logger,
	}
}

func LockKey(job string, barbershopID uint) string {
	return fmt.Sprintf("job:%s:%d", job, barbershopID)
}

// TickResult conta o que aconteceu em uma passada.
type TickResult struct {
	Ran     int
	Locked  int
	Errored int
}

// Tick roda cada job para cada barbearia uma vez. Falha de uma barbearia
// não interrompe as outras.
func (r *Runner) Tick(ctx context.Context) (TickResult, error) {
	var res TickResult

	ids, err := r.shops.ListIDs(ctx)
	if err != nil {
		return res, err
	}

	for _, shopID := range ids {
		for _, job := range r.jobs {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}

			ran, err := r.runLocked(ctx, job, shopID)
			switch {
			case err != nil:
				res.Errored++
				r.logger.ErrorContext(ctx, "job failed",
					"job", job.Name,
					"barbershop_id", shopID,
					"error", err,
				)
			case !ran:
				res.Locked++
				r.logger.DebugContext(ctx, "job locked elsewhere",
					"job", job.Name,
					"barbershop_id", shopID,
				)
			default:
				res.Ran++
			}
		}
	}

	return res, nil
}

func (r *Runner) runLocked(ctx context.Context, job Job, shopID uint) (bool, error) {
	release, ok, err := r.locker.Acquire(ctx, LockKey(job.Name, shopID), r.lockTTL)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	defer release()

	return true, job.Run(ctx, shopID)
}

// Run executa um Tick imediatamente e depois a cada interval até ctx acabar.
func (r *Runner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if res, err := r.Tick(ctx); err != nil {
			r.logger.ErrorContext(ctx, "worker tick failed", "error", err)
		} else {
			r.logger.InfoContext(ctx, "worker tick",
				"ran", res.Ran,
				"locked", res.Locked,
				"errored", res.Errored,
			)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
