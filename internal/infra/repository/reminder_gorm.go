package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/reminder"
)

type ReminderGormRepository struct {
	*JobRunGormRepository
	*SmsLogGormRepository
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{
		JobRunGormRepository: NewJobRunGormRepository(db),
		SmsLogGormRepository: NewSmsLogGormRepository(db),
		db:                   db,
	}
}

func (r *ReminderGormRepository) ListApprovedBetween(
	ctx context.Context,
	barbershopID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("ConfirmedSlot").
		Where(
			"barbershop_id = ? AND status = ? AND date BETWEEN ? AND ?",
			barbershopID, string(domain.StatusApproved), fromDate, toDate,
		).
		Order("date ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, errs.Wrap(err, "list approved appointments for reminders")
	}

	return apps, nil
}

// ClaimDispatch depende do índice único em dedup_key; a violação indica
// que outra execução já reservou o envio.
func (r *ReminderGormRepository) ClaimDispatch(
	ctx context.Context,
	rec *models.SmsLog,
) (bool, error) {

	return claimOutcome(r.db.WithContext(ctx).Create(rec).Error)
}

func claimOutcome(err error) (bool, error) {
	if httperr.IsUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, errs.Wrap(err, "claim reminder dispatch")
	}
	return true, nil
}

func (r *ReminderGormRepository) UpdateDispatch(
	ctx context.Context,
	rec *models.SmsLog,
) error {
	err := r.db.WithContext(ctx).
		Model(&models.SmsLog{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"status": rec.Status,
			"error":  rec.Error,
		}).Error
	return errs.Wrapf(err, "update sms log %d", rec.ID)
}

var _ reminder.Repository = (*ReminderGormRepository)(nil)
