// Package mail delivers HTML emails. SES is the production backend.
package mail

import "context"

// Mailer sends a single HTML message.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, htmlBody string) error
}
