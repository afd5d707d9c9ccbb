// Package server implements the webhook receiver: decode the change event,
// run it through the notifier's rule, and email matching ones.
package server

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"dbhook-notifier/internal/email"
	"dbhook-notifier/internal/filter"
	"dbhook-notifier/internal/mirror"
	"dbhook-notifier/internal/models"
)

// Notifier is the per-deployment part of a receiver: the rule that selects
// events and the composer that turns a matched record into mail. Everything
// else is shared.
type Notifier struct {
	Name    string
	Rule    filter.Rule
	Compose func(d filter.Decision, rec models.Record) email.Message
}

// EventMirror fans handled events out to downstream consumers. Satisfied by
// *mirror.Publisher, including its nil-receiver no-op.
type EventMirror interface {
	Publish(event *models.ChangeEvent) error
}

var _ EventMirror = (*mirror.Publisher)(nil)

// Webhook receives change events and turns matching ones into emails.
type Webhook struct {
	notifier Notifier
	sender   email.Sender
	mirror   EventMirror
	logger   *logrus.Logger
}

// NewWebhook creates a receiver. mir may be nil when mirroring is disabled.
func NewWebhook(n Notifier, sender email.Sender, mir EventMirror, logger *logrus.Logger) *Webhook {
	return &Webhook{
		notifier: n,
		sender:   sender,
		mirror:   mir,
		logger:   logger,
	}
}

// Handler returns the route table wrapped in the shared-secret check.
func (h *Webhook) Handler(secret string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook", h.handleEvent)
	mux.HandleFunc("GET /healthz", h.handleHealth)
	return SecretMiddleware(secret, mux)
}

// handleHealth handles GET /healthz.
func (h *Webhook) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

// handleEvent handles POST /webhook.
func (h *Webhook) handleEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := models.DecodeChangeEvent(r.Body)
	if err != nil {
		h.logger.Warnf("[%s] Rejected malformed payload: %v", h.notifier.Name, err)
		writeText(w, http.StatusBadRequest, "bad request")
		return
	}

	decision := h.notifier.Rule.Decide(ev)
	if decision == filter.Ignore {
		h.logger.Debugf("[%s] Ignored %s event for %s.%s", h.notifier.Name, ev.Type, ev.Schema, ev.Table)
		writeText(w, http.StatusOK, "ignored")
		return
	}

	msg := h.notifier.Compose(decision, ev.Record)
	if err := h.sender.Send(r.Context(), msg); err != nil {
		h.logger.Errorf("[%s] Failed to send notification: %v", h.notifier.Name, err)
		writeText(w, http.StatusBadGateway, "delivery failed")
		return
	}

	if h.mirror != nil {
		if err := h.mirror.Publish(ev); err != nil {
			h.logger.Warnf("[%s] Failed to mirror event: %v", h.notifier.Name, err)
		}
	}

	h.logger.Infof("[%s] Handled %s event for %s.%s", h.notifier.Name, ev.Type, ev.Schema, ev.Table)
	writeText(w, http.StatusOK, "ok")
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
