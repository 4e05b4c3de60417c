package models

import "time"

type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	Weekday int `json:"weekday"`

	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	Active     bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkingHourOverride fecha uma janela de um barbeiro em um dia específico.
type WorkingHourOverride struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	BarbershopID uint   `gorm:"index:idx_override_day,priority:1;not null" json:"barbershop_id"`
	BarberID     uint   `gorm:"index:idx_override_day,priority:2;not null" json:"barber_id"`
	Date         string `gorm:"size:10;index:idx_override_day,priority:3;not null" json:"date"`
	StartTime    string `gorm:"size:5;not null" json:"start_time"`
	EndTime      string `gorm:"size:5;not null" json:"end_time"`
	Reason       string `gorm:"size:255" json:"reason"`
	CreatedBy    *uint  `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
}
