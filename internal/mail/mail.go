// Package mail delivers contact form submissions to the site owner.
package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	gomail "github.com/emersion/go-message/mail"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Contact is a contact form submission.
type Contact struct {
	Name    string
	Email   string
	Message string
}

// Sender delivers contact messages.
type Sender interface {
	Send(ctx context.Context, c Contact) error
}

// SMTPConfig holds the SMTP server and the owner's inbox.
type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

// SMTPSender sends mail through an authenticated SMTP relay.
type SMTPSender struct {
	cfg SMTPConfig
	now func() time.Time
}

// NewSMTPSender returns a sender for cfg. Messages go to cfg.User when no
// recipient is set.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.ToEmail == "" {
		cfg.ToEmail = cfg.User
	}
	return &SMTPSender{cfg: cfg, now: time.Now}
}

// Send composes and delivers c.
func (s *SMTPSender) Send(ctx context.Context, c Contact) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := Compose(s.cfg.User, s.cfg.ToEmail, c, s.now())
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	if err := smtp.SendMail(addr, auth, s.cfg.User, []string{s.cfg.ToEmail}, msg); err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}

	slog.Info("contact email sent", "from", c.Email)
	return nil
}

// Compose renders c as an RFC 5322 message from the relay account to the
// owner, with Reply-To set to the visitor.
func Compose(from, to string, c Contact, now time.Time) ([]byte, error) {
	var h gomail.Header
	h.SetDate(now)
	h.SetSubject("Portfolio Contact: " + c.Name)
	h.SetAddressList("From", []*gomail.Address{{Name: "Portfolio", Address: from}})
	h.SetAddressList("To", []*gomail.Address{{Address: to}})
	h.SetAddressList("Reply-To", []*gomail.Address{{Name: c.Name, Address: c.Email}})
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})

	var buf bytes.Buffer
	w, err := gomail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("creating message writer: %w", err)
	}
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, c.Name, c.Email, c.Message)
	if _, err := io.WriteString(w, body); err != nil {
		return nil, fmt.Errorf("writing message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing message writer: %w", err)
	}
	return buf.Bytes(), nil
}
