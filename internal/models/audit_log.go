package models

import "time"

// AuditLog é gravado de forma assíncrona pelo audit.Dispatcher; Actor é
// admin, customer ou system.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint   `gorm:"index:idx_audit_shop_created,priority:1;not null" json:"barbershop_id"`
	Actor        string `gorm:"size:20;index" json:"actor"`
	UserID       *uint  `json:"user_id,omitempty"`
	Action       string `gorm:"size:60;index;not null" json:"action"`

	Entity   string `gorm:"size:40" json:"entity"`
	EntityID *uint  `gorm:"index" json:"entity_id,omitempty"`
	Summary  string `gorm:"size:255" json:"summary"`
	Metadata string `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"index:idx_audit_shop_created,priority:2" json:"created_at"`
}
