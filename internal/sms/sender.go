// Package sms define o transporte de SMS usado pelos lembretes e avisos de
// cancelamento. O envio não tem retry interno.
package sms

import (
	"context"
	"log/slog"
	"regexp"
	"time"
)

//go:generate mockgen -source=sender.go -destination=smsmock/mock_sender.go -package=smsmock

type Sender interface {
	Send(ctx context.Context, to string, message string) error
}

// LogSender só registra a mensagem; usado em desenvolvimento.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, to string, message string) error {
	s.logger.InfoContext(ctx, "sms (log only)", "to", to, "message", message)
	return nil
}

// NewSender usa o provedor HTTP quando há URL configurada, senão só loga.
func NewSender(providerURL, apiKey string, timeout time.Duration, logger *slog.Logger) Sender {
	if providerURL == "" {
		return NewLogSender(logger)
	}
	return NewHTTPSender(providerURL, apiKey, timeout)
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone remove tudo que não é dígito e zeros à esquerda.
func NormalizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	for len(digits) > 0 && digits[0] == '0' {
		digits = digits[1:]
	}
	return digits
}

// SamePhone compara dois telefones ignorando formatação.
func SamePhone(a, b string) bool {
	na, nb := NormalizePhone(a), NormalizePhone(b)
	return na != "" && na == nb
}
