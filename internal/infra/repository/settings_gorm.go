package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
	"github.com/BruksfildServices01/barber-booking/internal/settings"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) Get(
	ctx context.Context,
	barbershopID uint,
) (settings.Settings, error) {

	var row models.ShopSettings
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return settings.Settings{}, nil
	}
	if err != nil {
		return settings.Settings{}, errs.Wrap(err, "get shop settings")
	}

	return settings.Settings{
		AdminPhone:          row.AdminPhone,
		CustomReminderHours: row.CustomReminderHours,
	}, nil
}

// Save faz upsert pela barbearia.
func (r *SettingsGormRepository) Save(
	ctx context.Context,
	barbershopID uint,
	s settings.Settings,
) error {

	row := models.ShopSettings{
		BarbershopID:        barbershopID,
		AdminPhone:          s.AdminPhone,
		CustomReminderHours: s.CustomReminderHours,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "barbershop_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"admin_phone", "custom_reminder_hours", "updated_at"}),
		}).
		Create(&row).Error

	return errs.Wrap(err, "save shop settings")
}

var _ settings.Store = (*SettingsGormRepository)(nil)
