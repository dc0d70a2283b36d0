package service

import "context"

// Mailer delivers transactional mail. Every send from a service is
// best-effort: failures are logged and never fail the calling operation.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
