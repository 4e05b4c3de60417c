package reminder

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// ListApprovedBetween devolve aprovados com fromDate <= date <= toDate,
	// com o slot confirmado carregado.
	ListApprovedBetween(
		ctx context.Context,
		barbershopID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	// ClaimDispatch insere o registro pending; false quando a chave já existe.
	ClaimDispatch(
		ctx context.Context,
		rec *models.SmsLog,
	) (bool, error)

	UpdateDispatch(
		ctx context.Context,
		rec *models.SmsLog,
	) error

	SaveJobRun(
		ctx context.Context,
		run *models.JobRun,
	) error
}
