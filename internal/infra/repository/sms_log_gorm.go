package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
	"github.com/BruksfildServices01/barber-booking/internal/sms"
)

type SmsLogGormRepository struct {
	db *gorm.DB
}

func NewSmsLogGormRepository(db *gorm.DB) *SmsLogGormRepository {
	return &SmsLogGormRepository{db: db}
}

func (r *SmsLogGormRepository) CreateSmsLog(
	ctx context.Context,
	rec *models.SmsLog,
) error {
	return errs.Wrap(r.db.WithContext(ctx).Create(rec).Error, "create sms log")
}

var _ sms.LogStore = (*SmsLogGormRepository)(nil)

type JobRunGormRepository struct {
	db *gorm.DB
}

func NewJobRunGormRepository(db *gorm.DB) *JobRunGormRepository {
	return &JobRunGormRepository{db: db}
}

func (r *JobRunGormRepository) SaveJobRun(
	ctx context.Context,
	run *models.JobRun,
) error {
	return errs.Wrap(r.db.WithContext(ctx).Create(run).Error, "save job run")
}
