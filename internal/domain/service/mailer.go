package service

import "context"

// Mail is a single outbound email with HTML and plain text bodies.
type Mail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
