package mail

import (
	"context"
	"log/slog"
)

// LogSender writes mail to the application log instead of delivering it.
// Used in development when SMTP is not configured.
type LogSender struct{}

// NewLogSender creates a new LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the mail and reports success.
func (s *LogSender) Send(_ context.Context, to, subject, htmlBody string) error {
	slog.Info("mail delivery skipped (SMTP not configured)",
		"to", to,
		"subject", subject,
		"body_bytes", len(htmlBody),
	)
	return nil
}
