package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/expense"
)

var ErrRecurringExpenseNotFound = httperr.ErrBusiness("recurring_expense_not_found")

type ExpenseGormRepository struct {
	*JobRunGormRepository
	db *gorm.DB
}

func NewExpenseGormRepository(db *gorm.DB) *ExpenseGormRepository {
	return &ExpenseGormRepository{
		JobRunGormRepository: NewJobRunGormRepository(db),
		db:                   db,
	}
}

func (r *ExpenseGormRepository) Transaction(
	ctx context.Context,
	fn func(tx expense.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewExpenseGormRepository(tx))
	})
}

func (r *ExpenseGormRepository) ListDueIDs(
	ctx context.Context,
	barbershopID uint,
	now time.Time,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.RecurringExpense{}).
		Where("barbershop_id = ? AND is_active = ? AND next_run_at <= ?", barbershopID, true, now).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, errs.Wrap(err, "list due recurring expenses")
	}
	return ids, nil
}

func (r *ExpenseGormRepository) GetRecurringForUpdate(
	ctx context.Context,
	barbershopID uint,
	id uint,
) (*models.RecurringExpense, error) {

	var def models.RecurringExpense
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&def).Error; err != nil {
		return nil, notFound(err, ErrRecurringExpenseNotFound)
	}
	return &def, nil
}

func (r *ExpenseGormRepository) UpdateRecurring(
	ctx context.Context,
	def *models.RecurringExpense,
) error {
	return errs.Wrapf(r.db.WithContext(ctx).Save(def).Error, "update recurring expense %d", def.ID)
}

func (r *ExpenseGormRepository) CreateRecurring(
	ctx context.Context,
	def *models.RecurringExpense,
) error {
	return errs.Wrap(r.db.WithContext(ctx).Create(def).Error, "create recurring expense")
}

func (r *ExpenseGormRepository) ListRecurring(
	ctx context.Context,
	barbershopID uint,
) ([]models.RecurringExpense, error) {

	var out []models.RecurringExpense
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("next_run_at ASC").
		Find(&out).Error; err != nil {
		return nil, errs.Wrap(err, "list recurring expenses")
	}
	return out, nil
}

func (r *ExpenseGormRepository) CreateExpense(
	ctx context.Context,
	e *models.Expense,
) error {
	return errs.Wrap(r.db.WithContext(ctx).Create(e).Error, "create expense")
}

var _ expense.Repository = (*ExpenseGormRepository)(nil)
