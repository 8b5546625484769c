// Package email sends transactional notifications. Callers depend on the
// Sender interface so wiring a different transport stays a one-line change.
package email

import "context"

// Sender delivers a single HTML email.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// NoopSender silently drops messages. Used when SMTP is not configured.
type NoopSender struct{}

func (NoopSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	return nil
}
