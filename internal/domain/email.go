package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvitationEmailData holds data for the invitation email.
type InvitationEmailData struct {
	Email     string
	Token     string
	InvitedBy string
	ExpiresAt time.Time
}

// EmailService sends application emails.
type EmailService interface {
	SendInvitation(ctx context.Context, data *InvitationEmailData) error
}
