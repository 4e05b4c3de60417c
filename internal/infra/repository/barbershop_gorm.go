package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
)

type BarbershopGormRepository struct {
	db *gorm.DB
}

func NewBarbershopGormRepository(db *gorm.DB) *BarbershopGormRepository {
	return &BarbershopGormRepository{db: db}
}

// ListIDs devolve todas as barbearias em ordem; os jobs rodam uma por uma.
func (r *BarbershopGormRepository) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Barbershop{}).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, errs.Wrap(err, "list barbershop ids")
	}
	return ids, nil
}
