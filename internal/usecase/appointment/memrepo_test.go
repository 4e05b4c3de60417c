package appointment

import (
	"context"
	"errors"
	"sort"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/sms"
)

type memState struct {
	shops        map[uint]models.Barbershop
	barbers      map[uint]models.Barber
	appointments map[uint]models.Appointment
	slots        map[uint]models.ConfirmedSlot
	overrides    []models.WorkingHourOverride
	workingHours []models.WorkingHours
	nextID       uint
}

func (s *memState) clone() *memState {
	c := &memState{
		shops:        map[uint]models.Barbershop{},
		barbers:      map[uint]models.Barber{},
		appointments: map[uint]models.Appointment{},
		slots:        map[uint]models.ConfirmedSlot{},
		overrides:    append([]models.WorkingHourOverride(nil), s.overrides...),
		workingHours: append([]models.WorkingHours(nil), s.workingHours...),
		nextID:       s.nextID,
	}
	for k, v := range s.shops {
		c.shops[k] = v
	}
	for k, v := range s.barbers {
		c.barbers[k] = v
	}
	for k, v := range s.appointments {
		c.appointments[k] = v
	}
	for k, v := range s.slots {
		c.slots[k] = v
	}
	return c
}

// memRepo imita o repositório gorm; Transaction desfaz o estado quando fn falha.
type memRepo struct {
	state *memState

	// updateErr força falha ao gravar o agendamento com esse id.
	updateErr map[uint]error
}

func newMemRepo() *memRepo {
	return &memRepo{
		state: &memState{
			shops:        map[uint]models.Barbershop{},
			barbers:      map[uint]models.Barber{},
			appointments: map[uint]models.Appointment{},
			slots:        map[uint]models.ConfirmedSlot{},
			nextID:       100,
		},
		updateErr: map[uint]error{},
	}
}

func (r *memRepo) id() uint {
	r.state.nextID++
	return r.state.nextID
}

func (r *memRepo) addShop(id uint, name string) {
	r.state.shops[id] = models.Barbershop{ID: id, Name: name, Slug: name}
}

func (r *memRepo) addBarber(shopID, id uint, active bool) {
	r.state.barbers[id] = models.Barber{ID: id, BarbershopID: shopID, Name: "barber", Active: active}
}

// seed grava um agendamento; slot != nil implica status approved.
func (r *memRepo) seed(ap models.Appointment, slot *models.ConfirmedSlot) uint {
	if ap.ID == 0 {
		ap.ID = r.id()
	}
	ap.ConfirmedSlot = nil
	r.state.appointments[ap.ID] = ap
	if slot != nil {
		s := *slot
		s.AppointmentID = ap.ID
		r.state.slots[ap.ID] = s
	}
	return ap.ID
}

func (r *memRepo) get(id uint) models.Appointment {
	ap := r.state.appointments[id]
	if s, ok := r.state.slots[id]; ok {
		ap.ConfirmedSlot = &s
	}
	return ap
}

func (r *memRepo) hasSlot(id uint) bool {
	_, ok := r.state.slots[id]
	return ok
}

func (r *memRepo) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	snapshot := r.state.clone()
	if err := fn(r); err != nil {
		r.state = snapshot
		return err
	}
	return nil
}

func (r *memRepo) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	shop, ok := r.state.shops[id]
	if !ok {
		return nil, domain.ErrBarbershopNotFound
	}
	return &shop, nil
}

func (r *memRepo) GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	for _, shop := range r.state.shops {
		if shop.Slug == slug {
			return &shop, nil
		}
	}
	return nil, domain.ErrBarbershopNotFound
}

func (r *memRepo) GetBarber(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error) {
	b, ok := r.state.barbers[barberID]
	if !ok || b.BarbershopID != barbershopID {
		return nil, domain.ErrBarberNotFound
	}
	return &b, nil
}

func (r *memRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = r.id()
	r.seed(*ap, nil)
	return nil
}

func (r *memRepo) filter(keep func(models.Appointment) bool) []models.Appointment {
	var out []models.Appointment
	for id := range r.state.appointments {
		ap := r.get(id)
		if keep(ap) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memRepo) ListActiveAppointmentsForDay(
	ctx context.Context,
	barbershopID, barberID uint,
	date string,
	forUpdate bool,
) ([]models.Appointment, error) {
	return r.filter(func(ap models.Appointment) bool {
		return ap.BarbershopID == barbershopID &&
			ap.BarberID == barberID &&
			ap.Date == date &&
			domain.Status(ap.Status).IsActive()
	}), nil
}

func (r *memRepo) GetAppointment(ctx context.Context, barbershopID, appointmentID uint) (*models.Appointment, error) {
	ap, ok := r.state.appointments[appointmentID]
	if !ok || ap.BarbershopID != barbershopID {
		return nil, domain.ErrAppointmentNotFound
	}
	out := r.get(appointmentID)
	return &out, nil
}

func (r *memRepo) GetAppointmentForUpdate(ctx context.Context, barbershopID, appointmentID uint) (*models.Appointment, error) {
	return r.GetAppointment(ctx, barbershopID, appointmentID)
}

func (r *memRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.updateErr[ap.ID]; err != nil {
		return err
	}
	cp := *ap
	cp.ConfirmedSlot = nil
	r.state.appointments[ap.ID] = cp
	return nil
}

func (r *memRepo) CreateConfirmedSlot(ctx context.Context, slot *models.ConfirmedSlot) error {
	if _, ok := r.state.slots[slot.AppointmentID]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	slot.ID = r.id()
	r.state.slots[slot.AppointmentID] = *slot
	return nil
}

func (r *memRepo) DeleteConfirmedSlot(ctx context.Context, appointmentID uint) error {
	delete(r.state.slots, appointmentID)
	return nil
}

func (r *memRepo) ListApprovedUpTo(ctx context.Context, barbershopID uint, date string) ([]models.Appointment, error) {
	return r.filter(func(ap models.Appointment) bool {
		return ap.BarbershopID == barbershopID &&
			ap.Status == string(domain.StatusApproved) &&
			ap.Date <= date
	}), nil
}

func (r *memRepo) ListAppointmentsForDay(ctx context.Context, barbershopID, barberID uint, date string) ([]models.Appointment, error) {
	return r.filter(func(ap models.Appointment) bool {
		return ap.BarbershopID == barbershopID &&
			(barberID == 0 || ap.BarberID == barberID) &&
			ap.Date == date
	}), nil
}

func (r *memRepo) CreateOverride(ctx context.Context, o *models.WorkingHourOverride) error {
	o.ID = r.id()
	r.state.overrides = append(r.state.overrides, *o)
	return nil
}

func (r *memRepo) ListOverridesForDay(ctx context.Context, barbershopID, barberID uint, date string) ([]models.WorkingHourOverride, error) {
	var out []models.WorkingHourOverride
	for _, o := range r.state.overrides {
		if o.BarbershopID == barbershopID && (barberID == 0 || o.BarberID == barberID) && o.Date == date {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memRepo) GetWorkingHours(ctx context.Context, barberID uint, weekday int) (*models.WorkingHours, error) {
	for _, wh := range r.state.workingHours {
		if wh.BarberID == barberID && wh.Weekday == weekday {
			return &wh, nil
		}
	}
	return nil, nil
}

var _ domain.Repository = (*memRepo)(nil)

// ======================================================
// Outros fakes
// ======================================================

type recordedEvents struct {
	actions []string
}

func (r *recordedEvents) Record(ev audit.Event) {
	r.actions = append(r.actions, ev.Action)
}

type fakeNotifier struct {
	failFor map[string]bool
	sent    []sms.Message
}

func (n *fakeNotifier) Notify(ctx context.Context, msg sms.Message) bool {
	if n.failFor[msg.To] {
		return false
	}
	n.sent = append(n.sent, msg)
	return true
}
