// Package reminder decide quais lembretes estão devidos para um horário.
package reminder

import (
	"fmt"
	"time"
)

// Tolerance precisa ser menor que o intervalo do worker.
const Tolerance = 5 * time.Minute

const (
	TierHour2  = "hour2"
	TierHour1  = "hour1"
	TierCustom = "custom"
)

type Tier struct {
	Name string
	Lead time.Duration
}

// Tiers devolve os lembretes ativos; customHours <= 0 desliga o configurável.
func Tiers(customHours int) []Tier {
	tiers := []Tier{
		{Name: TierHour2, Lead: 2 * time.Hour},
		{Name: TierHour1, Lead: time.Hour},
	}
	if customHours > 0 {
		tiers = append(tiers, Tier{Name: TierCustom, Lead: time.Duration(customHours) * time.Hour})
	}
	return tiers
}

// Due: |now - (start - lead)| <= Tolerance.
func (t Tier) Due(start, now time.Time) bool {
	diff := now.Sub(start.Add(-t.Lead))
	if diff < 0 {
		diff = -diff
	}
	return diff <= Tolerance
}

// DedupKey identifica o envio de um tier para um agendamento.
func DedupKey(tier string, appointmentID uint) string {
	return fmt.Sprintf("%s:%d", tier, appointmentID)
}

func Message(tier Tier, date, start string) string {
	switch tier.Name {
	case TierCustom:
		return fmt.Sprintf("Lembrete: você tem horário marcado em %s às %s. Se não puder comparecer, cancele pelo link do agendamento.", date, start)
	default:
		return fmt.Sprintf("Lembrete: seu horário é hoje às %s. Até já!", start)
	}
}
