package appointment

import (
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timeofday"
)

var (
	ErrInvalidFormat       = timeofday.ErrInvalidFormat
	ErrInvalidRange        = httperr.ErrBusiness("invalid_range")
	ErrInvalidTransition   = httperr.ErrBusiness("invalid_transition")
	ErrTimeConflict        = httperr.ErrBusiness("time_conflict")
	ErrBlackoutConflict    = httperr.ErrBusiness("blackout_conflict")
	ErrAppointmentNotFound = httperr.ErrBusiness("appointment_not_found")
	ErrBarbershopNotFound  = httperr.ErrBusiness("barbershop_not_found")
	ErrBarberNotFound      = httperr.ErrBusiness("barber_not_found")
	ErrInvalidActor        = httperr.ErrBusiness("invalid_actor")
	ErrTooSoon             = httperr.ErrBusiness("too_soon")
)
