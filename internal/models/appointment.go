package models

import "time"

// Appointment é uma solicitação de agendamento de um cliente.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint       `gorm:"index:idx_appointment_day,priority:1;not null" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint   `gorm:"index:idx_appointment_day,priority:2;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	Date               string  `gorm:"size:10;index:idx_appointment_day,priority:3;not null" json:"date"`
	RequestedStartTime string  `gorm:"size:5;not null" json:"requested_start_time"`
	RequestedEndTime   *string `gorm:"size:5" json:"requested_end_time"`

	Status      string  `gorm:"size:20;default:'pending';index" json:"status"`
	CancelledBy *string `gorm:"size:20" json:"cancelled_by"`

	// Série recorrente ("abonman"); apenas referência.
	SubscriptionID *uint `json:"subscription_id"`

	ConfirmedSlot *ConfirmedSlot `gorm:"constraint:OnDelete:CASCADE;" json:"confirmed_slot,omitempty"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConfirmedSlot é o horário efetivamente ocupado por um agendamento aprovado.
type ConfirmedSlot struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	AppointmentID uint   `gorm:"uniqueIndex;not null" json:"appointment_id"`
	StartTime     string `gorm:"size:5;not null" json:"start_time"`
	EndTime       string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}
