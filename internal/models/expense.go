package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecurringExpense struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	BarbershopID uint            `gorm:"index;not null" json:"barbershop_id"`
	Title        string          `gorm:"size:100;not null" json:"title"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category     string          `gorm:"size:50" json:"category"`

	RepeatType     string `gorm:"size:10;not null" json:"repeat_type"`
	RepeatInterval int    `gorm:"not null;default:1" json:"repeat_interval"`

	StartDate time.Time  `json:"start_date"`
	NextRunAt time.Time  `gorm:"index" json:"next_run_at"`
	EndDate   *time.Time `json:"end_date"`
	IsActive  bool       `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Expense struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	BarbershopID       uint            `gorm:"index;not null" json:"barbershop_id"`
	RecurringExpenseID *uint           `gorm:"index" json:"recurring_expense_id"`
	Title              string          `gorm:"size:100;not null" json:"title"`
	Amount             decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category           string          `gorm:"size:50" json:"category"`
	Date               string          `gorm:"size:10;index;not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
