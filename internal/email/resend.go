package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// DeliveryError is a non-success response from the email provider.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email provider returned %d: %s", e.StatusCode, e.Body)
}

// Resend sends mail through the Resend HTTP API. One synchronous call per
// message, no retries.
type Resend struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
	logger   *logrus.Logger
}

// NewResend creates a Resend client. The endpoint is configurable so tests
// can point it at a local server.
func NewResend(endpoint, apiKey, from string, timeout time.Duration, logger *logrus.Logger) *Resend {
	return &Resend{
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send posts the message to the provider. A non-2xx response is logged with
// its status and body and returned as a *DeliveryError.
func (r *Resend) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(sendRequest{
		From:    r.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call email provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		r.logger.Errorf("Email provider rejected send: status=%d body=%s", resp.StatusCode, string(body))
		return &DeliveryError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	r.logger.Infof("Sent email to %s: %s", msg.To, msg.Subject)
	return nil
}
