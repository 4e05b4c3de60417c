// Package lock garante que duas réplicas do worker não rodem o mesmo job
// para a mesma barbearia ao mesmo tempo.
package lock

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
)

type Locker interface {
	// Acquire devolve ok=false sem erro quando outro processo já tem a chave.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

// MemoryLocker serve um único processo (desenvolvimento e testes).
type MemoryLocker struct {
	mu    sync.Mutex
	held  map[string]time.Time
	clock clock.Clock
}

func NewMemoryLocker(clk clock.Clock) *MemoryLocker {
	return &MemoryLocker{
		held:  make(map[string]time.Time),
		clock: clk,
	}
}

func (l *MemoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if exp, ok := l.held[key]; ok && now.Before(exp) {
		return nil, false, nil
	}

	expiry := now.Add(ttl)
	l.held[key] = expiry

	release := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.held[key].Equal(expiry) {
			delete(l.held, key)
		}
	}
	return release, true, nil
}
