package sms

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// LogStore persiste o registro de cada envio.
type LogStore interface {
	CreateSmsLog(ctx context.Context, rec *models.SmsLog) error
}

type Message struct {
	BarbershopID  uint
	AppointmentID *uint
	Kind          string
	To            string
	Body          string
}

// Notifier envia SMS sem deduplicação e registra o resultado. Falhas nunca
// sobem para quem chamou; o retorno indica apenas se o envio foi aceito.
type Notifier struct {
	sender Sender
	store  LogStore
	logger *slog.Logger
}

func NewNotifier(sender Sender, store LogStore, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{sender: sender, store: store, logger: logger}
}

func (n *Notifier) Notify(ctx context.Context, msg Message) bool {
	rec := &models.SmsLog{
		BarbershopID:  msg.BarbershopID,
		AppointmentID: msg.AppointmentID,
		Kind:          msg.Kind,
		Phone:         msg.To,
		Message:       msg.Body,
		Status:        models.SmsStatusSent,
	}

	sent := true
	if err := n.sender.Send(ctx, msg.To, msg.Body); err != nil {
		sent = false
		rec.Status = models.SmsStatusFailed
		rec.Error = err.Error()
		n.logger.WarnContext(ctx, "sms send failed",
			"kind", msg.Kind,
			"barbershop_id", msg.BarbershopID,
			"error", err,
		)
	}

	metrics.SmsSent.WithLabelValues(msg.Kind, rec.Status).Inc()

	if n.store != nil {
		if err := n.store.CreateSmsLog(ctx, rec); err != nil {
			n.logger.WarnContext(ctx, "sms log write failed", "kind", msg.Kind, "error", err)
		}
	}

	return sent
}
