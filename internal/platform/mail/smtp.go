// Package mail provides outbound email delivery for verification codes.
package mail

import (
	"context"
	"fmt"
	"os"
	"strconv"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LoadSMTPConfig reads the SMTP settings from the environment. The second
// return value is false when no usable configuration is present, in which
// case the caller should fall back to the logging sender.
func LoadSMTPConfig() (SMTPConfig, bool) {
	cfg := SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
	if port, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		cfg.Port = port
	} else {
		cfg.Port = 587
	}
	if cfg.Host == "" || cfg.From == "" {
		return SMTPConfig{}, false
	}
	return cfg, true
}

// SMTPSender delivers mail over SMTP.
type SMTPSender struct {
	client *gomail.Client
	from   string
}

// NewSMTPSender creates an SMTPSender from the given configuration.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.From}, nil
}

// Send delivers a single HTML email.
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
