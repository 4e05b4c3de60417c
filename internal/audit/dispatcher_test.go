package audit_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
)

type memoryStore struct {
	mu     sync.Mutex
	events []audit.Event
	fail   bool
}

func (s *memoryStore) Log(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("db down")
	}
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcherDeliversEvents(t *testing.T) {
	store := &memoryStore{}
	d := audit.NewDispatcher(store)

	d.Record(audit.Event{Action: "appointment_approved", Entity: "appointment"})
	d.Record(audit.Event{Action: "appointment_cancelled", Entity: "appointment"})
	d.Close()

	assert.Len(t, store.events, 2)
	assert.Equal(t, "appointment_approved", store.events[0].Action)
}

func TestDispatcherSwallowsStoreErrors(t *testing.T) {
	store := &memoryStore{fail: true}
	d := audit.NewDispatcher(store)

	assert.NotPanics(t, func() {
		d.Record(audit.Event{Action: "override_created"})
		d.Close()
	})
	assert.Empty(t, store.events)
}
