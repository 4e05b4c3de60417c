package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

type NewAppointmentInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string

	Date      string
	StartTime string
	EndTime   *string

	SubscriptionID *uint
	Notes          string
}

// ===============================
// Domain Actions
// ===============================

// NewAppointment valida datas e horários e devolve o pedido em pending.
// Conflitos são checados antes, por quem chama.
func NewAppointment(in NewAppointmentInput) (*models.Appointment, error) {
	if _, err := timeofday.ParseDate(in.Date); err != nil {
		return nil, err
	}

	start, err := timeofday.ParseTimeToMinutes(in.StartTime)
	if err != nil {
		return nil, err
	}

	if in.EndTime != nil {
		end, err := timeofday.ParseTimeToMinutes(*in.EndTime)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, ErrInvalidRange
		}
	}

	return &models.Appointment{
		BarbershopID:       in.BarbershopID,
		BarberID:           in.BarberID,
		ClientName:         strings.TrimSpace(in.ClientName),
		ClientPhone:        strings.TrimSpace(in.ClientPhone),
		Date:               in.Date,
		RequestedStartTime: in.StartTime,
		RequestedEndTime:   in.EndTime,
		Status:             string(InitialStatus()),
		SubscriptionID:     in.SubscriptionID,
		Notes:              in.Notes,
	}, nil
}

// Approve move o pedido para approved e devolve o único slot confirmado
// que deve ser persistido junto.
func Approve(ap *models.Appointment, confirmedStart, confirmedEnd string) (*models.ConfirmedSlot, error) {
	if err := CanApprove(Status(ap.Status)); err != nil {
		return nil, err
	}

	iv, err := NewInterval(confirmedStart, confirmedEnd)
	if err != nil {
		return nil, err
	}
	if !iv.Valid() {
		return nil, ErrInvalidRange
	}

	slot := &models.ConfirmedSlot{
		AppointmentID: ap.ID,
		StartTime:     confirmedStart,
		EndTime:       confirmedEnd,
	}

	ap.Status = string(StatusApproved)
	ap.ConfirmedSlot = slot
	return slot, nil
}

func Reject(ap *models.Appointment) error {
	if err := CanReject(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRejected)
	return nil
}

// Cancel libera o horário; o slot confirmado deve ser apagado na mesma transação.
func Cancel(ap *models.Appointment, by CancelledBy, now time.Time) error {
	if !ValidCancelledBy(by) {
		return ErrInvalidActor
	}
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	who := string(by)
	ap.Status = string(StatusCancelled)
	ap.CancelledBy = &who
	ap.CancelledAt = &now
	ap.ConfirmedSlot = nil
	return nil
}

// MarkDone só vale para aprovados cujo início já passou.
func MarkDone(ap *models.Appointment, start time.Time, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	if !start.Before(now) {
		return ErrInvalidTransition
	}

	ap.Status = string(StatusDone)
	ap.CompletedAt = &now
	ap.ConfirmedSlot = nil
	return nil
}

// StartInstant devolve o instante absoluto de início do horário que vale.
func StartInstant(ap *models.Appointment, utcOffsetHours int) (time.Time, error) {
	start := ap.RequestedStartTime
	if Status(ap.Status) == StatusApproved && ap.ConfirmedSlot != nil {
		start = ap.ConfirmedSlot.StartTime
	}
	return timeofday.LocalCivilToInstant(ap.Date, start, utcOffsetHours)
}
