package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hours(h int) *int { return &h }

func TestCustomHours(t *testing.T) {
	tests := []struct {
		name   string
		in     *int
		want   int
		wantOK bool
	}{
		{"unset", nil, 0, false},
		{"lower bound", hours(3), 3, true},
		{"upper bound", hours(24), 24, true},
		{"too small", hours(2), 0, false},
		{"too large", hours(25), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Settings{CustomReminderHours: tt.in}.CustomHours()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Settings{}.Validate())
	assert.NoError(t, Settings{CustomReminderHours: hours(12)}.Validate())
	assert.ErrorIs(t, Settings{CustomReminderHours: hours(1)}.Validate(), ErrInvalidReminderHours)
}
