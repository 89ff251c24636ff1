// Package mailer implements the Mailer interface over a plain SMTP relay.
package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"bizdir/config"
	"bizdir/internal/domain/service"
	"bizdir/internal/errors"

	"github.com/google/uuid"
)

// sendFunc matches smtp.SendMail; swapped out in tests.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// smtpMailer hands messages to the external relay. The credential handshake
// happens on every Send; connections are not pooled or reused.
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *slog.Logger
	send     sendFunc
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" || cfg.SMTP.From == "" {
		return nil, errors.New("smtp host and from address must be provided")
	}

	return &smtpMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
		logger:   logger,
		send:     smtp.SendMail,
	}, nil
}

// Send composes and transmits the mail, returning the generated message ID.
func (m *smtpMailer) Send(ctx context.Context, mail *service.Mail) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "context cancelled before sending mail")
	}

	if len(mail.To) == 0 {
		return "", errors.New("mail has no recipients")
	}
	for _, addr := range mail.To {
		if !validAddress(addr) {
			return "", errors.Errorf("invalid recipient address: %s", addr)
		}
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), m.host)
	message := buildMessage(m.from, mail, messageID)

	var auth smtp.Auth
	if m.username != "" && m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	if err := m.send(addr, auth, m.from, mail.To, []byte(message)); err != nil {
		return "", errors.Wrap(err, "smtp relay rejected the message")
	}

	m.logger.Info("Mail accepted by relay",
		slog.String("messageID", messageID),
		slog.Int("recipients", len(mail.To)),
		slog.String("subject", mail.Subject),
	)

	return messageID, nil
}

// buildMessage assembles the RFC 5322 message, multipart when attachments
// are present.
func buildMessage(from string, mail *service.Mail, messageID string) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("From: %s\r\n", from))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(mail.To, ", ")))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", mail.Subject))
	builder.WriteString(fmt.Sprintf("Message-ID: %s\r\n", messageID))
	builder.WriteString("MIME-Version: 1.0\r\n")

	if len(mail.Attachments) == 0 {
		builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		builder.WriteString("\r\n")
		builder.WriteString(mail.Body)

		return builder.String()
	}

	const boundary = "bizdir-mail-boundary"
	builder.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", boundary))
	builder.WriteString("\r\n")

	builder.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(mail.Body)
	builder.WriteString("\r\n")

	for _, att := range mail.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		builder.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		builder.WriteString(fmt.Sprintf("Content-Type: %s\r\n", contentType))
		builder.WriteString("Content-Transfer-Encoding: base64\r\n")
		builder.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", att.Filename))
		builder.WriteString("\r\n")
		builder.WriteString(base64.StdEncoding.EncodeToString(att.Data))
		builder.WriteString("\r\n")
	}

	builder.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return builder.String()
}

func validAddress(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}

	return strings.Contains(parts[1], ".")
}
