package appointment

import (
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

// DefaultDuration é a duração assumida de um pedido sem horário de término.
const DefaultDuration = 30

type Reason string

const (
	ReasonConflict Reason = "time_conflict"
	ReasonBlackout Reason = "blackout_conflict"
)

// Decision é o resultado da checagem de disponibilidade. Conflito é um
// resultado esperado, não um erro.
type Decision struct {
	Accepted       bool
	Reason         Reason
	ConflictingIDs []uint
}

func Accept() Decision {
	return Decision{Accepted: true}
}

// Err converte uma rejeição no erro de negócio correspondente.
func (d Decision) Err() error {
	switch {
	case d.Accepted:
		return nil
	case d.Reason == ReasonBlackout:
		return ErrBlackoutConflict
	default:
		return ErrTimeConflict
	}
}

// OccupiedInterval devolve o intervalo que vale para o agendamento: o slot
// confirmado quando aprovado, senão o horário pedido.
func OccupiedInterval(ap *models.Appointment) (Interval, error) {
	if Status(ap.Status) == StatusApproved && ap.ConfirmedSlot != nil {
		return NewInterval(ap.ConfirmedSlot.StartTime, ap.ConfirmedSlot.EndTime)
	}

	start, err := timeofday.ParseTimeToMinutes(ap.RequestedStartTime)
	if err != nil {
		return Interval{}, err
	}

	if ap.RequestedEndTime == nil {
		return Interval{Start: start, End: start + DefaultDuration}, nil
	}

	end, err := timeofday.ParseTimeToMinutes(*ap.RequestedEndTime)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// CheckAvailability decide se [candidateStart, candidateEnd) cabe na agenda
// do barbeiro no dia, considerando apenas pedidos pendentes e aprovados.
func CheckAvailability(
	barberID uint,
	date string,
	candidateStart string,
	candidateEnd string,
	existing []models.Appointment,
) (Decision, error) {

	candidate, err := NewInterval(candidateStart, candidateEnd)
	if err != nil {
		return Decision{}, err
	}
	return CheckIntervalAvailability(barberID, date, candidate, existing)
}

func CheckIntervalAvailability(
	barberID uint,
	date string,
	candidate Interval,
	existing []models.Appointment,
) (Decision, error) {

	if !candidate.Valid() {
		return Decision{}, ErrInvalidRange
	}

	conflicts, err := overlapping(barberID, date, candidate, existing)
	if err != nil {
		return Decision{}, err
	}

	if len(conflicts) > 0 {
		return Decision{Reason: ReasonConflict, ConflictingIDs: conflicts}, nil
	}
	return Accept(), nil
}

// CheckOverrides rejeita candidatos que caem numa janela fechada pelo admin.
func CheckOverrides(
	barberID uint,
	date string,
	candidateStart string,
	candidateEnd string,
	overrides []models.WorkingHourOverride,
) (Decision, error) {

	candidate, err := NewInterval(candidateStart, candidateEnd)
	if err != nil {
		return Decision{}, err
	}
	return CheckIntervalOverrides(barberID, date, candidate, overrides)
}

func CheckIntervalOverrides(
	barberID uint,
	date string,
	candidate Interval,
	overrides []models.WorkingHourOverride,
) (Decision, error) {

	if !candidate.Valid() {
		return Decision{}, ErrInvalidRange
	}

	var hits []uint
	for _, o := range overrides {
		if o.BarberID != barberID || o.Date != date {
			continue
		}
		closed, err := NewInterval(o.StartTime, o.EndTime)
		if err != nil {
			return Decision{}, err
		}
		if candidate.Overlaps(closed) {
			hits = append(hits, o.ID)
		}
	}

	if len(hits) > 0 {
		return Decision{Reason: ReasonBlackout, ConflictingIDs: hits}, nil
	}
	return Accept(), nil
}

// ComputeAffectedAppointments lista, na ordem recebida, os agendamentos
// ativos atingidos por um fechamento. Não altera nada.
func ComputeAffectedAppointments(
	barberID uint,
	date string,
	overrideStart string,
	overrideEnd string,
	existing []models.Appointment,
) ([]uint, error) {

	window, err := NewInterval(overrideStart, overrideEnd)
	if err != nil {
		return nil, err
	}
	if !window.Valid() {
		return nil, ErrInvalidRange
	}

	return overlapping(barberID, date, window, existing)
}

func overlapping(
	barberID uint,
	date string,
	window Interval,
	existing []models.Appointment,
) ([]uint, error) {

	var ids []uint
	for i := range existing {
		ap := &existing[i]
		if ap.BarberID != barberID || ap.Date != date || !Status(ap.Status).IsActive() {
			continue
		}

		occupied, err := OccupiedInterval(ap)
		if err != nil {
			return nil, err
		}
		if occupied.Overlaps(window) {
			ids = append(ids, ap.ID)
		}
	}
	return ids, nil
}
