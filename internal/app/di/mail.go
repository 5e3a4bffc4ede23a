// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"

	"resume_backend/internal/feature/auth/usecase"
	"resume_backend/internal/platform/mail"
)

// NewMailSender creates a MailSender implementation.
// If SMTP is configured, it returns the real SMTP sender.
// Otherwise, it falls back to a sender that only logs.
func NewMailSender() usecase.MailSender {
	cfg, ok := mail.LoadSMTPConfig()
	if !ok {
		slog.Warn("SMTP not configured, verification mail will only be logged")
		return mail.NewLogSender()
	}

	sender, err := mail.NewSMTPSender(cfg)
	if err != nil {
		slog.Error("SMTP client setup failed, falling back to log sender", "error", err)
		return mail.NewLogSender()
	}
	return sender
}
