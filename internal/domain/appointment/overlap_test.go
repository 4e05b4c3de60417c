package appointment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{name: "touching at boundary", aStart: "10:00", aEnd: "10:30", bStart: "10:30", bEnd: "11:00", want: false},
		{name: "partial overlap", aStart: "10:00", aEnd: "10:30", bStart: "10:15", bEnd: "10:45", want: true},
		{name: "contained", aStart: "09:00", aEnd: "12:00", bStart: "10:00", bEnd: "10:30", want: true},
		{name: "identical", aStart: "10:00", aEnd: "10:30", bStart: "10:00", bEnd: "10:30", want: true},
		{name: "disjoint", aStart: "08:00", aEnd: "09:00", bStart: "13:00", bEnd: "14:00", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ab, err := appointment.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			require.NoError(t, err)
			ba, err := appointment.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd)
			require.NoError(t, err)

			assert.Equal(t, tc.want, ab)
			assert.Equal(t, ab, ba, "overlap must be symmetric")
		})
	}
}

func TestOverlapsInvalidFormat(t *testing.T) {
	_, err := appointment.Overlaps("10:00", "25:00", "10:00", "11:00")
	assert.ErrorIs(t, err, appointment.ErrInvalidFormat)
}
