package models

import "time"

const (
	SmsStatusPending = "pending"
	SmsStatusSent    = "sent"
	SmsStatusFailed  = "failed"
)

// SmsLog registra cada envio de SMS. DedupKey garante no máximo um
// lembrete por (tier, agendamento); envios sem deduplicação deixam nil.
type SmsLog struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	BarbershopID  uint    `gorm:"index;not null" json:"barbershop_id"`
	AppointmentID *uint   `gorm:"index" json:"appointment_id"`
	Kind          string  `gorm:"size:30;not null" json:"kind"`
	DedupKey      *string `gorm:"size:64;uniqueIndex" json:"dedup_key"`
	Phone         string  `gorm:"size:20" json:"phone"`
	Message       string  `gorm:"type:text" json:"message"`
	Status        string  `gorm:"size:10;not null" json:"status"`
	Error         string  `gorm:"type:text" json:"error"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JobRun struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Job          string    `gorm:"size:50;index;not null" json:"job"`
	BarbershopID uint      `gorm:"index" json:"barbershop_id"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	Summary      string    `gorm:"type:text" json:"summary"`
	ErrorCount   int       `json:"error_count"`
}
