package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
	"github.com/BruksfildServices01/barber-booking/internal/worker"
)

type staticShops struct {
	ids []uint
	err error
}

func (s staticShops) ListIDs(context.Context) ([]uint, error) {
	return s.ids, s.err
}

func TestTickRunsEveryJobForEveryShop(t *testing.T) {
	locker := lock.NewMemoryLocker(clock.NewMockClock(time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)))

	var calls []string
	record := func(name string) worker.Job {
		return worker.Job{Name: name, Run: func(_ context.Context, id uint) error {
			calls = append(calls, worker.LockKey(name, id))
			return nil
		}}
	}

	r := worker.NewRunner(staticShops{ids: []uint{1, 2}}, locker, time.Minute, nil,
		record("reminders"), record("mark_done"))

	res, err := r.Tick(context.Background())
	require.NoError(t, err)

	assert.Equal(t, worker.TickResult{Ran: 4}, res)
	assert.Equal(t, []string{
		"job:reminders:1", "job:mark_done:1",
		"job:reminders:2", "job:mark_done:2",
	}, calls)
}

func TestTickSkipsHeldLockAndIsolatesFailures(t *testing.T) {
	ctx := context.Background()
	locker := lock.NewMemoryLocker(clock.NewMockClock(time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)))

	_, ok, err := locker.Acquire(ctx, worker.LockKey("reminders", 1), time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	ran := map[uint]bool{}
	job := worker.Job{Name: "reminders", Run: func(_ context.Context, id uint) error {
		ran[id] = true
		if id == 2 {
			return errors.New("boom")
		}
		return nil
	}}

	r := worker.NewRunner(staticShops{ids: []uint{1, 2, 3}}, locker, time.Minute, nil, job)

	res, err := r.Tick(ctx)
	require.NoError(t, err)

	assert.Equal(t, worker.TickResult{Ran: 1, Locked: 1, Errored: 1}, res)
	assert.False(t, ran[1])
	assert.True(t, ran[3])

	// o lock de quem rodou foi liberado
	_, ok, err = locker.Acquire(ctx, worker.LockKey("reminders", 3), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTickPropagatesListFailure(t *testing.T) {
	locker := lock.NewMemoryLocker(clock.NewRealClock())
	r := worker.NewRunner(staticShops{err: errors.New("db down")}, locker, time.Minute, nil)

	_, err := r.Tick(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	locker := lock.NewMemoryLocker(clock.NewRealClock())

	runs := 0
	job := worker.Job{Name: "mark_done", Run: func(context.Context, uint) error {
		runs++
		cancel()
		return nil
	}}

	done := make(chan struct{})
	go func() {
		worker.NewRunner(staticShops{ids: []uint{1}}, locker, time.Minute, nil, job).Run(ctx, time.Hour)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
	assert.Equal(t, 1, runs)
}
