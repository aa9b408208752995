// Package mailer sends outgoing mail over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"casa-do-pai/config"

	"go.uber.org/zap"
)

// SMTP dispatches mail through a plain SMTP relay.
type SMTP struct {
	log *zap.SugaredLogger
	cfg config.SMTPConfig
}

// New creates an SMTP mailer from configuration.
func New(log *zap.SugaredLogger, cfg config.SMTPConfig) *SMTP {
	return &SMTP{
		log: log.Named("mailer.smtp"),
		cfg: cfg,
	}
}

// SendRecoveryEmail sends the password-recovery message with the reset link.
// With smtp.enabled=false the message is logged and dropped, for local runs.
func (s *SMTP) SendRecoveryEmail(ctx context.Context, to, link string) error {
	subject := "Recuperação de Senha"
	body := fmt.Sprintf("Clique no link para redefinir sua senha: %s", link)

	if !s.cfg.Enabled {
		s.log.Infow("smtp disabled, dropping mail", "to", to, "subject", subject)
		return nil
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		s.cfg.From, to, subject, body,
	))

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.cfg.Addr(), auth, s.cfg.From, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.log.Errorw("failed to send recovery mail", "error", err, "to", to)
			return fmt.Errorf("send mail: %w", err)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	s.log.Infow("recovery mail sent", "to", to)
	return nil
}
