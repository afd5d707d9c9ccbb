// Package email defines the interface for transactional email delivery and
// provides a Resend-backed implementation.
package email

import "context"

// Message is a single outbound notification email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers notification emails. Tests inject a fake that records
// calls without hitting the network.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
