// Package settings expõe as configurações por barbearia lidas pelos jobs.
package settings

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	MinCustomReminderHours = 3
	MaxCustomReminderHours = 24
)

var ErrInvalidReminderHours = httperr.ErrBusiness("invalid_reminder_hours")

type Settings struct {
	AdminPhone          string `json:"admin_phone"`
	CustomReminderHours *int   `json:"custom_reminder_hours"`
}

// CustomHours devolve a antecedência do lembrete configurável; fora de
// [3,24] o lembrete fica desligado.
func (s Settings) CustomHours() (int, bool) {
	if s.CustomReminderHours == nil {
		return 0, false
	}
	h := *s.CustomReminderHours
	if h < MinCustomReminderHours || h > MaxCustomReminderHours {
		return 0, false
	}
	return h, true
}

func (s Settings) Validate() error {
	if s.CustomReminderHours == nil {
		return nil
	}
	if _, ok := s.CustomHours(); !ok {
		return ErrInvalidReminderHours
	}
	return nil
}

// Provider devolve Settings zerado quando a barbearia não configurou nada.
type Provider interface {
	Get(ctx context.Context, barbershopID uint) (Settings, error)
}

type Store interface {
	Provider
	Save(ctx context.Context, barbershopID uint, s Settings) error
}
