package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"cinema-backend/pkg/utils"

	"go.uber.org/zap"
)

// Mailer is the outbound email transport. Best-effort: the only delivery
// guarantee is the call's own return value.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type SMTPMailer struct {
	config utils.SMTPConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.SMTPConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

// Send delivers one HTML mail over SMTP with STARTTLS. Callers that need a
// time bound race this call against their own timer; the ctx is checked
// before dialing only.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	message := m.buildMessage(to, subject, htmlBody)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	defer client.Quit()

	tlsConfig := &tls.Config{ServerName: m.config.Host}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("start tls: %w", err)
	}

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(m.config.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}

	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("set recipient %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("open data writer: %w", err)
	}

	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	m.log.Debug("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (m *SMTPMailer) buildMessage(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		m.config.From, to, subject,
	)
	return []byte(headers + htmlBody)
}
