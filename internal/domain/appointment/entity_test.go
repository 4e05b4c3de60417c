package appointment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var now = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func TestNewAppointment(t *testing.T) {
	ap, err := appointment.NewAppointment(appointment.NewAppointmentInput{
		BarbershopID: 1,
		BarberID:     barberB1,
		ClientName:   " Ali ",
		ClientPhone:  "5551234567",
		Date:         day,
		StartTime:    "10:00",
		EndTime:      strPtr("10:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(appointment.StatusPending), ap.Status)
	assert.Equal(t, "Ali", ap.ClientName)
	assert.Nil(t, ap.ConfirmedSlot)

	_, err = appointment.NewAppointment(appointment.NewAppointmentInput{Date: day, StartTime: "10:30", EndTime: strPtr("10:00")})
	assert.ErrorIs(t, err, appointment.ErrInvalidRange)

	_, err = appointment.NewAppointment(appointment.NewAppointmentInput{Date: "20-05-2024", StartTime: "10:00"})
	assert.ErrorIs(t, err, appointment.ErrInvalidFormat)

	_, err = appointment.NewAppointment(appointment.NewAppointmentInput{Date: day, StartTime: "10:00", EndTime: strPtr("99:00")})
	assert.ErrorIs(t, err, appointment.ErrInvalidFormat)
}

func TestApprove(t *testing.T) {
	ap := pending(1, "10:00", nil)

	slot, err := appointment.Approve(&ap, "10:00", "10:45")
	require.NoError(t, err)
	assert.Equal(t, string(appointment.StatusApproved), ap.Status)
	assert.Equal(t, &models.ConfirmedSlot{AppointmentID: 1, StartTime: "10:00", EndTime: "10:45"}, slot)
	assert.Same(t, slot, ap.ConfirmedSlot)

	_, err = appointment.Approve(&ap, "10:00", "10:45")
	assert.ErrorIs(t, err, appointment.ErrInvalidTransition)
}

func TestApproveRejectsBadRangeWithoutMutation(t *testing.T) {
	ap := pending(1, "10:00", nil)

	_, err := appointment.Approve(&ap, "11:00", "10:00")
	assert.ErrorIs(t, err, appointment.ErrInvalidRange)
	assert.Equal(t, string(appointment.StatusPending), ap.Status)
	assert.Nil(t, ap.ConfirmedSlot)
}

func TestCancel(t *testing.T) {
	ap := approved(1, "10:00", "10:30")

	require.NoError(t, appointment.Cancel(&ap, appointment.CancelledByCustomer, now))
	assert.Equal(t, string(appointment.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledBy)
	assert.Equal(t, "customer", *ap.CancelledBy)
	assert.Nil(t, ap.ConfirmedSlot)

	err := appointment.Cancel(&ap, appointment.CancelledByAdmin, now)
	assert.ErrorIs(t, err, appointment.ErrInvalidTransition)
	assert.Equal(t, "customer", *ap.CancelledBy)

	other := pending(2, "10:00", nil)
	err = appointment.Cancel(&other, appointment.CancelledBy("system"), now)
	assert.ErrorIs(t, err, appointment.ErrInvalidActor)
}

func TestReject(t *testing.T) {
	ap := pending(1, "10:00", nil)
	require.NoError(t, appointment.Reject(&ap))
	assert.Equal(t, string(appointment.StatusRejected), ap.Status)

	assert.ErrorIs(t, appointment.Reject(&ap), appointment.ErrInvalidTransition)
	assert.ErrorIs(t, appointment.Cancel(&ap, appointment.CancelledByAdmin, now), appointment.ErrInvalidTransition)

	ok := approved(2, "10:00", "10:30")
	assert.ErrorIs(t, appointment.Reject(&ok), appointment.ErrInvalidTransition)
}

func TestMarkDone(t *testing.T) {
	ap := approved(1, "10:00", "10:30")
	start, err := appointment.StartInstant(&ap, 3)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 5, 20, 7, 0, 0, 0, time.UTC)))

	err = appointment.MarkDone(&ap, start, start)
	assert.ErrorIs(t, err, appointment.ErrInvalidTransition, "start must be strictly in the past")

	require.NoError(t, appointment.MarkDone(&ap, start, start.Add(time.Minute)))
	assert.Equal(t, string(appointment.StatusDone), ap.Status)
	assert.Nil(t, ap.ConfirmedSlot)
	assert.NotNil(t, ap.CompletedAt)

	p := pending(2, "08:00", nil)
	err = appointment.MarkDone(&p, start, now)
	assert.ErrorIs(t, err, appointment.ErrInvalidTransition)
}

func TestTerminalStates(t *testing.T) {
	for _, s := range []appointment.Status{appointment.StatusRejected, appointment.StatusCancelled, appointment.StatusDone} {
		assert.True(t, s.IsTerminal(), s)
		assert.False(t, s.IsActive(), s)
		for _, to := range []appointment.Status{appointment.StatusPending, appointment.StatusApproved, appointment.StatusCancelled, appointment.StatusDone, appointment.StatusRejected} {
			assert.ErrorIs(t, appointment.CanTransition(s, to), appointment.ErrInvalidTransition)
		}
	}
	assert.False(t, appointment.StatusPending.IsTerminal())
	assert.False(t, appointment.StatusApproved.IsTerminal())
}
