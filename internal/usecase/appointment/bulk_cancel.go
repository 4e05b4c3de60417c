package appointment

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/clock"
)

// BulkCancelError lista todos os agendamentos que não puderam ser
// cancelados. Quando devolvido, nenhum cancelamento do lote foi gravado.
type BulkCancelError struct {
	Failed map[uint]error
}

func (e *BulkCancelError) Error() string {
	ids := e.FailedIDs()
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d: %v", id, e.Failed[id]))
	}
	return fmt.Sprintf("bulk cancel failed for %d appointment(s): %s", len(ids), strings.Join(parts, "; "))
}

func (e *BulkCancelError) Unwrap() []error {
	out := make([]error, 0, len(e.Failed))
	for _, id := range e.FailedIDs() {
		out = append(out, e.Failed[id])
	}
	return out
}

func (e *BulkCancelError) FailedIDs() []uint {
	ids := make([]uint, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// cancelMany tenta todos os ids antes de decidir; qualquer falha vira um
// *BulkCancelError e quem chamou desfaz a transação.
func cancelMany(
	ctx context.Context,
	tx domain.Repository,
	barbershopID uint,
	ids []uint,
	by domain.CancelledBy,
	now time.Time,
) ([]*models.Appointment, error) {

	ids = uniqueIDs(ids)

	cancelled := make([]*models.Appointment, 0, len(ids))
	failed := map[uint]error{}

	for _, id := range ids {
		ap, err := cancelOne(ctx, tx, barbershopID, id, by, now)
		if err != nil {
			failed[id] = err
			continue
		}
		cancelled = append(cancelled, ap)
	}

	if len(failed) > 0 {
		return nil, &BulkCancelError{Failed: failed}
	}
	return cancelled, nil
}

// uniqueIDs remove repetidos mantendo a ordem de chegada.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

type CancelledSummary struct {
	Count int    `json:"count"`
	IDs   []uint `json:"ids"`
}

type BulkCancelAppointments struct {
	repo  domain.Repository
	audit audit.Recorder
	clock clock.Clock
}

func NewBulkCancelAppointments(
	repo domain.Repository,
	audit audit.Recorder,
	clk clock.Clock,
) *BulkCancelAppointments {
	return &BulkCancelAppointments{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

// Execute cancela todos ou nenhum.
func (uc *BulkCancelAppointments) Execute(
	ctx context.Context,
	barbershopID uint,
	adminID *uint,
	ids []uint,
) (CancelledSummary, error) {

	if len(ids) == 0 {
		return CancelledSummary{IDs: []uint{}}, nil
	}

	var cancelled []*models.Appointment
	now := uc.clock.Now()

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		cancelled, err = cancelMany(ctx, tx, barbershopID, ids, domain.CancelledByAdmin, now)
		return err
	})
	if err != nil {
		return CancelledSummary{}, err
	}

	out := CancelledSummary{Count: len(cancelled), IDs: make([]uint, 0, len(cancelled))}
	for _, ap := range cancelled {
		out.IDs = append(out.IDs, ap.ID)
		metrics.AppointmentTransitions.WithLabelValues(ap.Status).Inc()
		uc.audit.Record(appointmentEvent(ap, ActorAdmin, adminID, "appointment_cancelled", "bulk", nil))
	}

	return out, nil
}
