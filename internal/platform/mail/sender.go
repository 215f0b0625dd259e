package mail

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/SscSPs/blogging_platform_app/internal/platform/config"
)

// Sender delivers a single plain-text message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewSender returns an SMTP sender, or a sender that only logs when no SMTP host is configured.
func NewSender(cfg config.SMTPConfig, logger *slog.Logger) Sender {
	if cfg.Host == "" {
		return &logSender{logger: logger}
	}
	return &smtpSender{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

type smtpSender struct {
	from   string
	dialer *gomail.Dialer
}

func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(_ context.Context, to, subject, body string) error {
	s.logger.Info("SMTP not configured, email not sent", "to", to, "subject", subject, "body", body)
	return nil
}
