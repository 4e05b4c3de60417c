package expense

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/expense"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
)

const (
	shopID uint = 1
	offset      = 3
)

type memRepo struct {
	defs     map[uint]models.RecurringExpense
	expenses []models.Expense
	runs     []models.JobRun
	nextID   uint

	// staleIDs substitui a listagem, simulando outra execução concorrente.
	staleIDs []uint
}

func newMemRepo() *memRepo {
	return &memRepo{defs: map[uint]models.RecurringExpense{}, nextID: 1}
}

func (r *memRepo) add(def models.RecurringExpense) uint {
	def.ID = r.nextID
	r.nextID++
	def.BarbershopID = shopID
	r.defs[def.ID] = def
	return def.ID
}

func (r *memRepo) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	defs := map[uint]models.RecurringExpense{}
	for k, v := range r.defs {
		defs[k] = v
	}
	expenses := append([]models.Expense(nil), r.expenses...)

	if err := fn(r); err != nil {
		r.defs = defs
		r.expenses = expenses
		return err
	}
	return nil
}

func (r *memRepo) ListDueIDs(ctx context.Context, barbershopID uint, now time.Time) ([]uint, error) {
	if r.staleIDs != nil {
		return r.staleIDs, nil
	}
	var ids []uint
	for id, d := range r.defs {
		if d.BarbershopID == barbershopID && d.IsActive && !d.NextRunAt.After(now) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *memRepo) GetRecurringForUpdate(ctx context.Context, barbershopID, id uint) (*models.RecurringExpense, error) {
	d, ok := r.defs[id]
	if !ok || d.BarbershopID != barbershopID {
		return nil, errors.New("record not found")
	}
	return &d, nil
}

func (r *memRepo) UpdateRecurring(ctx context.Context, def *models.RecurringExpense) error {
	r.defs[def.ID] = *def
	return nil
}

func (r *memRepo) CreateRecurring(ctx context.Context, def *models.RecurringExpense) error {
	def.ID = r.nextID
	r.nextID++
	r.defs[def.ID] = *def
	return nil
}

func (r *memRepo) ListRecurring(ctx context.Context, barbershopID uint) ([]models.RecurringExpense, error) {
	var out []models.RecurringExpense
	for _, d := range r.defs {
		if d.BarbershopID == barbershopID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memRepo) CreateExpense(ctx context.Context, e *models.Expense) error {
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *memRepo) SaveJobRun(ctx context.Context, run *models.JobRun) error {
	r.runs = append(r.runs, *run)
	return nil
}

func daily(next time.Time) models.RecurringExpense {
	return models.RecurringExpense{
		Title:          "limpeza",
		Amount:         decimal.RequireFromString("80.00"),
		Category:       "servicos",
		RepeatType:     string(domain.RepeatDaily),
		RepeatInterval: 1,
		StartDate:      next,
		NextRunAt:      next,
		IsActive:       true,
	}
}

func TestRoller_DailyRoll(t *testing.T) {
	repo := newMemRepo()
	id := repo.add(daily(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)))

	clk := clock.NewMockClock(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC))
	roller := NewRoller(repo, clk, offset, nil)

	sum, err := roller.RunOnce(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 1, Created: 1}, sum)

	require.Len(t, repo.expenses, 1)
	assert.Equal(t, "2024-01-10", repo.expenses[0].Date)
	require.NotNil(t, repo.expenses[0].RecurringExpenseID)
	assert.Equal(t, id, *repo.expenses[0].RecurringExpenseID)
	assert.True(t, repo.defs[id].NextRunAt.Equal(time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC)))
	assert.True(t, repo.defs[id].IsActive)

	// mesma janela: nada a fazer
	sum, err = roller.RunOnce(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
	assert.Len(t, repo.expenses, 1)

	require.Len(t, repo.runs, 2)
	var stored Summary
	require.NoError(t, json.Unmarshal([]byte(repo.runs[0].Summary), &stored))
	assert.Equal(t, 1, stored.Created)
}

func TestRoller_EndDatePassedDeactivates(t *testing.T) {
	repo := newMemRepo()
	def := daily(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	def.EndDate = &end
	id := repo.add(def)

	clk := clock.NewMockClock(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC))

	sum, err := NewRoller(repo, clk, offset, nil).RunOnce(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 1, Deactivated: 1}, sum)
	assert.Empty(t, repo.expenses)
	assert.False(t, repo.defs[id].IsActive)
}

func TestRoller_LastOccurrenceDeactivates(t *testing.T) {
	repo := newMemRepo()
	def := daily(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))
	end := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)
	def.EndDate = &end
	id := repo.add(def)

	clk := clock.NewMockClock(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC))

	sum, err := NewRoller(repo, clk, offset, nil).RunOnce(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 1, Created: 1, Deactivated: 1}, sum)
	assert.Len(t, repo.expenses, 1)
	assert.False(t, repo.defs[id].IsActive)
}

func TestRoller_MonthlyClamp(t *testing.T) {
	repo := newMemRepo()
	def := daily(time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC))
	def.RepeatType = string(domain.RepeatMonthly)
	id := repo.add(def)

	clk := clock.NewMockClock(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	_, err := NewRoller(repo, clk, offset, nil).RunOnce(context.Background(), shopID)
	require.NoError(t, err)
	assert.True(t, repo.defs[id].NextRunAt.Equal(time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)))
}

func TestRoller_FailureIsolated(t *testing.T) {
	repo := newMemRepo()
	broken := daily(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))
	broken.RepeatType = "yearly"
	brokenID := repo.add(broken)
	okID := repo.add(daily(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)))

	clk := clock.NewMockClock(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC))

	sum, err := NewRoller(repo, clk, offset, nil).RunOnce(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 2, Created: 1, Errors: 1}, sum)
	assert.True(t, repo.defs[brokenID].NextRunAt.Equal(broken.NextRunAt))
	assert.True(t, repo.defs[okID].NextRunAt.After(clk.Now()))
	assert.Equal(t, 1, repo.runs[0].ErrorCount)
}

func TestRoller_SkipsAlreadyAdvanced(t *testing.T) {
	repo := newMemRepo()
	id := repo.add(daily(time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC)))
	repo.staleIDs = []uint{id}

	clk := clock.NewMockClock(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC))

	sum, err := NewRoller(repo, clk, offset, nil).RunOnce(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 1, Skipped: 1}, sum)
	assert.Empty(t, repo.expenses)
}

func TestCreateRecurring(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)

	tests := []struct {
		name    string
		in      CreateRecurringInput
		wantErr error
	}{
		{
			name: "ok",
			in: CreateRecurringInput{
				Title: "aluguel", Amount: decimal.RequireFromString("2500"),
				RepeatType: "monthly", RepeatInterval: 1, StartDate: start,
			},
		},
		{
			name: "blank title",
			in: CreateRecurringInput{
				Title: "  ", Amount: decimal.RequireFromString("10"),
				RepeatType: "daily", RepeatInterval: 1, StartDate: start,
			},
			wantErr: ErrInvalidTitle,
		},
		{
			name: "zero amount",
			in: CreateRecurringInput{
				Title: "x", Amount: decimal.Zero,
				RepeatType: "daily", RepeatInterval: 1, StartDate: start,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "bad cadence",
			in: CreateRecurringInput{
				Title: "x", Amount: decimal.RequireFromString("10"),
				RepeatType: "daily", RepeatInterval: 0, StartDate: start,
			},
			wantErr: domain.ErrInvalidRepeatInterval,
		},
		{
			name: "end before start",
			in: CreateRecurringInput{
				Title: "x", Amount: decimal.RequireFromString("10"),
				RepeatType: "weekly", RepeatInterval: 1, StartDate: start, EndDate: &before,
			},
			wantErr: ErrInvalidEndDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			tt.in.BarbershopID = shopID

			def, err := NewCreateRecurring(repo, audit.Nop{}).Execute(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.defs)
				return
			}

			require.NoError(t, err)
			assert.True(t, def.IsActive)
			assert.True(t, def.NextRunAt.Equal(start))
			assert.Len(t, repo.defs, 1)
		})
	}
}
