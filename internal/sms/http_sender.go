package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
)

// HTTPSender envia pelo webhook JSON do provedor: POST {to, message}.
type HTTPSender struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHTTPSender(url, apiKey string, timeout time.Duration) *HTTPSender {
	return &HTTPSender{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

func (s *HTTPSender) Send(ctx context.Context, to string, message string) error {
	body, err := json.Marshal(sendRequest{To: to, Message: message})
	if err != nil {
		return errs.Wrap(err, "encode sms request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build sms request")
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "sms provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Newf("sms provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	return nil
}
