package notification

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"chairbook/models"

	"go.uber.org/zap"
)

// EmailSender delivers one email.
type EmailSender interface {
	Send(ctx context.Context, msg models.EmailPayload) error
}

// SMTPSender relays mail through an SMTP server without authentication.
type SMTPSender struct {
	Addr string
	From string
	// send is smtp.SendMail outside tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(host, port, from string) *SMTPSender {
	return &SMTPSender{Addr: net.JoinHostPort(host, port), From: from, send: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, msg models.EmailPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return fmt.Errorf("invalid header in email to %q", msg.To)
	}
	if err := s.send(s.Addr, nil, s.From, []string{msg.To}, s.render(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	return nil
}

func (s *SMTPSender) render(msg models.EmailPayload) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// LogSender only logs messages. Used when no SMTP host is configured.
type LogSender struct {
	Logger *zap.Logger
}

func (s LogSender) Send(_ context.Context, msg models.EmailPayload) error {
	s.Logger.Info("email (not sent, no SMTP host configured)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
