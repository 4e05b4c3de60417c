package expense

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/expense"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var (
	ErrInvalidAmount  = httperr.ErrBusiness("invalid_amount")
	ErrInvalidTitle   = httperr.ErrBusiness("invalid_title")
	ErrInvalidEndDate = httperr.ErrBusiness("invalid_end_date")
)

type CreateRecurringInput struct {
	BarbershopID uint
	AdminID      *uint

	Title    string
	Amount   decimal.Decimal
	Category string

	RepeatType     string
	RepeatInterval int

	StartDate time.Time
	EndDate   *time.Time
}

type CreateRecurring struct {
	repo  Repository
	audit audit.Recorder
}

func NewCreateRecurring(repo Repository, audit audit.Recorder) *CreateRecurring {
	return &CreateRecurring{repo: repo, audit: audit}
}

// Execute cadastra a definição; a primeira ocorrência é StartDate.
func (uc *CreateRecurring) Execute(
	ctx context.Context,
	in CreateRecurringInput,
) (*models.RecurringExpense, error) {

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if err := domain.ValidateCadence(domain.RepeatType(in.RepeatType), in.RepeatInterval); err != nil {
		return nil, err
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, ErrInvalidEndDate
	}

	def := &models.RecurringExpense{
		BarbershopID:   in.BarbershopID,
		Title:          title,
		Amount:         in.Amount.Round(2),
		Category:       in.Category,
		RepeatType:     in.RepeatType,
		RepeatInterval: in.RepeatInterval,
		StartDate:      in.StartDate.UTC(),
		NextRunAt:      in.StartDate.UTC(),
		EndDate:        in.EndDate,
		IsActive:       true,
	}

	if err := uc.repo.CreateRecurring(ctx, def); err != nil {
		return nil, err
	}

	id := def.ID
	uc.audit.Record(audit.Event{
		BarbershopID: in.BarbershopID,
		Actor:        "admin",
		UserID:       in.AdminID,
		Action:       "recurring_expense_created",
		Entity:       "recurring_expense",
		EntityID:     &id,
		Summary:      title,
	})

	return def, nil
}

type ListRecurring struct {
	repo Repository
}

func NewListRecurring(repo Repository) *ListRecurring {
	return &ListRecurring{repo: repo}
}

func (uc *ListRecurring) Execute(ctx context.Context, barbershopID uint) ([]models.RecurringExpense, error) {
	return uc.repo.ListRecurring(ctx, barbershopID)
}
