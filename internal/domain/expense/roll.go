package expense

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

// Step é o efeito de uma rodada sobre uma definição.
type Step struct {
	Expense    *models.Expense
	NextRunAt  time.Time
	Deactivate bool
}

// Roll materializa a ocorrência de NextRunAt. Definição vencida (NextRunAt
// depois de EndDate) só é desativada. Não altera def.
func Roll(def *models.RecurringExpense, utcOffsetHours int) (Step, error) {
	if def.EndDate != nil && def.NextRunAt.After(*def.EndDate) {
		return Step{NextRunAt: def.NextRunAt, Deactivate: true}, nil
	}

	loc := timeofday.Zone(utcOffsetHours)

	// o dia do mês vem da data inicial, não do cursor já limitado
	anchorDay := 0
	if !def.StartDate.IsZero() {
		anchorDay = def.StartDate.In(loc).Day()
	}

	next, err := Advance(def.NextRunAt, RepeatType(def.RepeatType), def.RepeatInterval, anchorDay, loc)
	if err != nil {
		return Step{}, err
	}

	defID := def.ID
	step := Step{
		Expense: &models.Expense{
			BarbershopID:       def.BarbershopID,
			RecurringExpenseID: &defID,
			Title:              def.Title,
			Amount:             def.Amount,
			Category:           def.Category,
			Date:               timeofday.CivilDate(def.NextRunAt, utcOffsetHours),
		},
		NextRunAt: next,
	}

	if def.EndDate != nil && next.After(*def.EndDate) {
		step.Deactivate = true
	}

	return step, nil
}
