package expense

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// ListDueIDs devolve as definições ativas com next_run_at <= now.
	ListDueIDs(
		ctx context.Context,
		barbershopID uint,
		now time.Time,
	) ([]uint, error)

	GetRecurringForUpdate(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) (*models.RecurringExpense, error)

	UpdateRecurring(
		ctx context.Context,
		def *models.RecurringExpense,
	) error

	CreateRecurring(
		ctx context.Context,
		def *models.RecurringExpense,
	) error

	ListRecurring(
		ctx context.Context,
		barbershopID uint,
	) ([]models.RecurringExpense, error)

	CreateExpense(
		ctx context.Context,
		e *models.Expense,
	) error

	SaveJobRun(
		ctx context.Context,
		run *models.JobRun,
	) error
}
