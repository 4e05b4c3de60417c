// Package timeofday converts between "HH:MM" wall-clock strings, minute
// offsets and absolute instants for a shop running on a fixed UTC offset.
package timeofday

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	MinutesPerDay = 24 * 60

	DateLayout = "2006-01-02"

	// DefaultUTCOffsetHours é o fuso civil das barbearias (UTC+3, sem horário de verão).
	DefaultUTCOffsetHours = 3
)

var (
	ErrInvalidFormat = httperr.ErrBusiness("invalid_format")
	ErrOutOfRange    = httperr.ErrBusiness("out_of_range")
)

// ParseTimeToMinutes converte "HH:MM" em minutos desde a meia-noite.
func ParseTimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, ErrInvalidFormat
	}

	h, ok := parseDigits(parts[0])
	if !ok || h < 0 || h > 23 {
		return 0, ErrInvalidFormat
	}

	m, ok := parseDigits(parts[1])
	if !ok || m < 0 || m > 59 {
		return 0, ErrInvalidFormat
	}

	return h*60 + m, nil
}

// MinutesToTime é o inverso de ParseTimeToMinutes.
func MinutesToTime(m int) (string, error) {
	if m < 0 || m >= MinutesPerDay {
		return "", ErrOutOfRange
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

// Zone devolve um fuso fixo para o offset informado.
func Zone(utcOffsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", utcOffsetHours), utcOffsetHours*60*60)
}

// ParseDate valida um dia civil "YYYY-MM-DD" e o devolve à meia-noite UTC.
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return d, nil
}

// LocalCivilToInstant compõe o instante absoluto de date+time no horário da loja.
func LocalCivilToInstant(date, hm string, utcOffsetHours int) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	mins, err := ParseTimeToMinutes(hm)
	if err != nil {
		return time.Time{}, err
	}

	local := time.Date(d.Year(), d.Month(), d.Day(), mins/60, mins%60, 0, 0, Zone(utcOffsetHours))
	return local.UTC(), nil
}

// CivilDate devolve o dia civil (no horário da loja) que contém o instante.
func CivilDate(instant time.Time, utcOffsetHours int) string {
	return instant.In(Zone(utcOffsetHours)).Format(DateLayout)
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
