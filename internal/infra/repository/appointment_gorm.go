package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
)

var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusApproved),
}

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Barbershop / Barber
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, notFound(err, domain.ErrBarbershopNotFound)
	}
	return &shop, nil
}

func (r *AppointmentGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, notFound(err, domain.ErrBarbershopNotFound)
	}
	return &shop, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", barberID, barbershopID).
		First(&barber).Error; err != nil {
		return nil, notFound(err, domain.ErrBarberNotFound)
	}
	return &barber, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error; err != nil {
		return errs.Wrap(err, "create appointment")
	}
	return nil
}

func (r *AppointmentGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date string,
	forUpdate bool,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var apps []models.Appointment
	if err := q.
		Preload("ConfirmedSlot").
		Where(
			"barbershop_id = ? AND barber_id = ? AND date = ? AND status IN ?",
			barbershopID, barberID, date, activeStatuses,
		).
		Order("requested_start_time ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, errs.Wrap(err, "list active appointments")
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	barbershopID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return r.getAppointment(r.db.WithContext(ctx), barbershopID, appointmentID)
}

func (r *AppointmentGormRepository) GetAppointmentForUpdate(
	ctx context.Context,
	barbershopID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return r.getAppointment(
		r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}),
		barbershopID,
		appointmentID,
	)
}

func (r *AppointmentGormRepository) getAppointment(
	q *gorm.DB,
	barbershopID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := q.
		Preload("ConfirmedSlot").
		Where("id = ? AND barbershop_id = ?", appointmentID, barbershopID).
		First(&ap).Error; err != nil {
		return nil, notFound(err, domain.ErrAppointmentNotFound)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error; err != nil {
		return errs.Wrapf(err, "update appointment %d", ap.ID)
	}
	return nil
}

func (r *AppointmentGormRepository) CreateConfirmedSlot(
	ctx context.Context,
	slot *models.ConfirmedSlot,
) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		return errs.Wrapf(err, "create confirmed slot for appointment %d", slot.AppointmentID)
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteConfirmedSlot(
	ctx context.Context,
	appointmentID uint,
) error {
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Delete(&models.ConfirmedSlot{}).Error; err != nil {
		return errs.Wrapf(err, "delete confirmed slot for appointment %d", appointmentID)
	}
	return nil
}

func (r *AppointmentGormRepository) ListApprovedUpTo(
	ctx context.Context,
	barbershopID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("ConfirmedSlot").
		Where(
			"barbershop_id = ? AND status = ? AND date <= ?",
			barbershopID, string(domain.StatusApproved), date,
		).
		Order("date ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, errs.Wrap(err, "list approved appointments")
	}

	return apps, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("ConfirmedSlot").
		Where("barbershop_id = ? AND date = ?", barbershopID, date)

	if barberID != 0 {
		q = q.Where("barber_id = ?", barberID)
	}

	var apps []models.Appointment
	if err := q.
		Order("requested_start_time ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, errs.Wrap(err, "list appointments for day")
	}

	return apps, nil
}

// --------------------------------------------------
// Overrides / Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateOverride(
	ctx context.Context,
	o *models.WorkingHourOverride,
) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return errs.Wrap(err, "create working hour override")
	}
	return nil
}

func (r *AppointmentGormRepository) ListOverridesForDay(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date string,
) ([]models.WorkingHourOverride, error) {

	q := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND date = ?", barbershopID, date)

	if barberID != 0 {
		q = q.Where("barber_id = ?", barberID)
	}

	var out []models.WorkingHourOverride
	if err := q.Order("start_time ASC").Find(&out).Error; err != nil {
		return nil, errs.Wrap(err, "list overrides")
	}
	return out, nil
}

// GetWorkingHours devolve nil sem erro quando o barbeiro não trabalha no dia.
func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "get working hours")
	}

	return &wh, nil
}

func notFound(err error, business error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return business
	}
	return errs.Wrap(err, "query")
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
