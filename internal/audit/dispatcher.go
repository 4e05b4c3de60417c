package audit

import "log/slog"

type Event struct {
	BarbershopID uint
	Actor        string
	UserID       *uint
	Action       string
	Entity       string
	EntityID     *uint
	Summary      string
	Metadata     any
}

// Recorder registra eventos de auditoria sem nunca devolver erro ao chamador.
type Recorder interface {
	Record(ev Event)
}

type Store interface {
	Log(ev Event) error
}

type Dispatcher struct {
	store Store
	queue chan Event
	done  chan struct{}
}

func NewDispatcher(store Store) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Event, 100), // buffer seguro
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.store.Log(ev); err != nil {
			slog.Warn("audit error", "action", ev.Action, "entity", ev.Entity, "error", err)
		}
	}
}

func (d *Dispatcher) Record(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		slog.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close esvazia a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

// Nop descarta todos os eventos.
type Nop struct{}

func (Nop) Record(Event) {}
