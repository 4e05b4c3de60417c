package appointment_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	barberB1 uint = 1
	day           = "2024-05-20"
)

func strPtr(s string) *string { return &s }

func pending(id uint, start string, end *string) models.Appointment {
	return models.Appointment{
		ID:                 id,
		BarberID:           barberB1,
		Date:               day,
		RequestedStartTime: start,
		RequestedEndTime:   end,
		Status:             string(appointment.StatusPending),
	}
}

func approved(id uint, start, end string) models.Appointment {
	return models.Appointment{
		ID:                 id,
		BarberID:           barberB1,
		Date:               day,
		RequestedStartTime: start,
		Status:             string(appointment.StatusApproved),
		ConfirmedSlot:      &models.ConfirmedSlot{AppointmentID: id, StartTime: start, EndTime: end},
	}
}

func TestCheckAvailability(t *testing.T) {
	existing := []models.Appointment{approved(10, "10:00", "10:30")}

	t.Run("overlapping candidate is rejected", func(t *testing.T) {
		d, err := appointment.CheckAvailability(barberB1, day, "10:15", "10:45", existing)
		require.NoError(t, err)
		assert.False(t, d.Accepted)
		assert.Equal(t, appointment.ReasonConflict, d.Reason)
		assert.Equal(t, []uint{10}, d.ConflictingIDs)
		assert.ErrorIs(t, d.Err(), appointment.ErrTimeConflict)
	})

	t.Run("boundary adjacent candidate is accepted", func(t *testing.T) {
		d, err := appointment.CheckAvailability(barberB1, day, "10:30", "11:00", existing)
		require.NoError(t, err)
		assert.True(t, d.Accepted)
		assert.NoError(t, d.Err())
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := appointment.CheckAvailability(barberB1, day, "11:00", "10:00", existing)
		assert.ErrorIs(t, err, appointment.ErrInvalidRange)
	})

	t.Run("empty range", func(t *testing.T) {
		_, err := appointment.CheckAvailability(barberB1, day, "11:00", "11:00", existing)
		assert.ErrorIs(t, err, appointment.ErrInvalidRange)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, err := appointment.CheckAvailability(barberB1, day, "1100", "12:00", existing)
		assert.ErrorIs(t, err, appointment.ErrInvalidFormat)
	})

	t.Run("other barber, other day and terminal states are ignored", func(t *testing.T) {
		other := approved(11, "10:00", "10:30")
		other.BarberID = 2
		otherDay := approved(12, "10:00", "10:30")
		otherDay.Date = "2024-05-21"
		cancelled := pending(13, "10:00", nil)
		cancelled.Status = string(appointment.StatusCancelled)
		done := approved(14, "10:00", "10:30")
		done.Status = string(appointment.StatusDone)

		d, err := appointment.CheckAvailability(barberB1, day, "10:00", "10:30",
			[]models.Appointment{other, otherDay, cancelled, done})
		require.NoError(t, err)
		assert.True(t, d.Accepted)
	})

	t.Run("pending without end uses the default duration", func(t *testing.T) {
		d, err := appointment.CheckAvailability(barberB1, day, "09:20", "09:40",
			[]models.Appointment{pending(20, "09:00", nil)})
		require.NoError(t, err)
		assert.False(t, d.Accepted)

		d, err = appointment.CheckAvailability(barberB1, day, "09:30", "09:40",
			[]models.Appointment{pending(20, "09:00", nil)})
		require.NoError(t, err)
		assert.True(t, d.Accepted)
	})

	t.Run("pending with end uses the requested end", func(t *testing.T) {
		d, err := appointment.CheckAvailability(barberB1, day, "09:30", "09:40",
			[]models.Appointment{pending(21, "09:00", strPtr("10:00"))})
		require.NoError(t, err)
		assert.False(t, d.Accepted)
	})

	t.Run("adjacent pending requests do not conflict", func(t *testing.T) {
		first := pending(30, "09:00", strPtr("09:30"))
		d, err := appointment.CheckAvailability(barberB1, day, "09:30", "10:00", []models.Appointment{first})
		require.NoError(t, err)
		assert.True(t, d.Accepted)
	})
}

func TestOccupiedIntervalPrefersConfirmedSlot(t *testing.T) {
	ap := approved(1, "10:00", "11:00")
	ap.RequestedStartTime = "08:00"

	iv, err := appointment.OccupiedInterval(&ap)
	require.NoError(t, err)
	assert.Equal(t, appointment.Interval{Start: 600, End: 660}, iv)
}

func TestCheckOverrides(t *testing.T) {
	overrides := []models.WorkingHourOverride{
		{ID: 5, BarberID: barberB1, Date: day, StartTime: "12:00", EndTime: "13:00"},
		{ID: 6, BarberID: 2, Date: day, StartTime: "09:00", EndTime: "18:00"},
	}

	d, err := appointment.CheckOverrides(barberB1, day, "12:30", "13:30", overrides)
	require.NoError(t, err)
	assert.False(t, d.Accepted)
	assert.Equal(t, appointment.ReasonBlackout, d.Reason)
	assert.ErrorIs(t, d.Err(), appointment.ErrBlackoutConflict)

	d, err = appointment.CheckOverrides(barberB1, day, "13:00", "13:30", overrides)
	require.NoError(t, err)
	assert.True(t, d.Accepted)
}

func TestComputeAffectedAppointments(t *testing.T) {
	existing := []models.Appointment{
		pending(1, "10:00", strPtr("10:30")),
		approved(2, "11:00", "11:30"),
		approved(3, "12:00", "12:30"),
		pending(4, "09:30", nil),
	}
	rejected := pending(5, "10:30", nil)
	rejected.Status = string(appointment.StatusRejected)
	existing = append(existing, rejected)

	ids, err := appointment.ComputeAffectedAppointments(barberB1, day, "10:00", "12:00", existing)
	require.NoError(t, err)

	if diff := cmp.Diff([]uint{1, 2}, ids); diff != "" {
		t.Errorf("affected mismatch (-want +got):\n%s", diff)
	}

	_, err = appointment.ComputeAffectedAppointments(barberB1, day, "12:00", "10:00", existing)
	assert.ErrorIs(t, err, appointment.ErrInvalidRange)
}
