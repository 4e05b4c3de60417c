package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/logging"
	"github.com/BruksfildServices01/barber-booking/internal/sms"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucExpense "github.com/BruksfildServices01/barber-booking/internal/usecase/expense"
	ucReminder "github.com/BruksfildServices01/barber-booking/internal/usecase/reminder"
	"github.com/BruksfildServices01/barber-booking/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	if cfg.Worker.LockTTL >= cfg.Worker.Interval {
		logger.Warn("lock ttl should be shorter than the worker interval",
			"lock_ttl", cfg.Worker.LockTTL,
			"interval", cfg.Worker.Interval,
		)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	clk := clock.NewRealClock()
	offset := cfg.ShopUTCOffsetHours

	var locker lock.Locker = lock.NewMemoryLocker(clk)
	if cfg.RedisURL != "" {
		client, err := lock.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect redis", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		locker = lock.NewRedisLocker(client, "barber-booking:")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	sender := sms.NewSender(cfg.SMS.ProviderURL, cfg.SMS.APIKey, cfg.SMS.Timeout, logger)

	// ======================================================
	// 🧠 JOBS
	// ======================================================
	scheduler := ucReminder.NewScheduler(
		infraRepo.NewReminderGormRepository(db),
		infraRepo.NewSettingsGormRepository(db),
		sender,
		clk,
		offset,
		logger,
	)
	roller := ucExpense.NewRoller(infraRepo.NewExpenseGormRepository(db), clk, offset, logger)
	sweep := ucAppointment.NewMarkDoneSweep(infraRepo.NewAppointmentGormRepository(db), auditDispatcher, clk, offset)

	runner := worker.NewRunner(
		infraRepo.NewBarbershopGormRepository(db),
		locker,
		cfg.Worker.LockTTL,
		logger,
		worker.Job{Name: ucReminder.JobName, Run: func(ctx context.Context, id uint) error {
			_, err := scheduler.RunOnce(ctx, id)
			return err
		}},
		worker.Job{Name: ucExpense.JobName, Run: func(ctx context.Context, id uint) error {
			_, err := roller.RunOnce(ctx, id)
			return err
		}},
		worker.Job{Name: ucAppointment.JobMarkDone, Run: func(ctx context.Context, id uint) error {
			_, err := sweep.RunOnce(ctx, id)
			return err
		}},
	)

	logger.Info("worker started", "interval", cfg.Worker.Interval)
	runner.Run(ctx, cfg.Worker.Interval)
	logger.Info("worker stopped")
}
