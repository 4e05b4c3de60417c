package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
)

type WorkingHoursGormRepository struct {
	db *gorm.DB
}

func NewWorkingHoursGormRepository(db *gorm.DB) *WorkingHoursGormRepository {
	return &WorkingHoursGormRepository{db: db}
}

func (r *WorkingHoursGormRepository) ListWorkingHours(
	ctx context.Context,
	barberID uint,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, errs.Wrap(err, "list working hours")
	}
	return hours, nil
}

// ReplaceWorkingHours troca a semana inteira do barbeiro em uma transação.
func (r *WorkingHoursGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	barberID uint,
	days []models.WorkingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return errs.Wrap(err, "clear working hours")
		}

		if len(days) == 0 {
			return nil
		}

		for i := range days {
			days[i].BarberID = barberID
		}
		return errs.Wrap(tx.Create(&days).Error, "save working hours")
	})
}
