package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// Transaction executa fn numa única transação; erro em fn desfaz tudo.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Barbershop / Barber --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListActiveAppointmentsForDay devolve pending/approved com o slot
	// confirmado carregado. forUpdate bloqueia as linhas até o fim da transação.
	ListActiveAppointmentsForDay(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
		date string,
		forUpdate bool,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		barbershopID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentForUpdate(
		ctx context.Context,
		barbershopID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CreateConfirmedSlot(
		ctx context.Context,
		slot *models.ConfirmedSlot,
	) error

	DeleteConfirmedSlot(
		ctx context.Context,
		appointmentID uint,
	) error

	// ListApprovedUpTo devolve aprovados com data <= date (varredura de done).
	ListApprovedUpTo(
		ctx context.Context,
		barbershopID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Listing --------
	ListAppointmentsForDay(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Overrides / Availability --------
	CreateOverride(
		ctx context.Context,
		o *models.WorkingHourOverride,
	) error

	ListOverridesForDay(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
		date string,
	) ([]models.WorkingHourOverride, error)

	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)
}
