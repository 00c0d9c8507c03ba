//go:generate go run go.uber.org/mock/mockgen -source=mailer.go -destination=../mocks/mock_mailer.go -package=mocks

// Package notify sends out-of-band notifications such as contact form mail.
package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/dkeye/Meet/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

type Mailer interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

// SMTPMailer delivers contact submissions to a fixed inbox.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, msg domain.ContactMessage) error {
	if m.cfg.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}
	out, err := m.build(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	log.Debug().Str("module", "notify.smtp").Str("to", m.cfg.To).Msg("mail delivered")
	return nil
}

// build composes the notification. The submitter is set as Reply-To; the
// envelope sender is the authenticated account.
func (m *SMTPMailer) build(msg domain.ContactMessage) (*mail.Msg, error) {
	out := mail.NewMsg()
	from := m.cfg.Username
	if from == "" {
		from = m.cfg.To
	}
	if err := out.From(from); err != nil {
		return nil, fmt.Errorf("mail from: %w", err)
	}
	if err := out.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("mail to: %w", err)
	}
	if err := out.ReplyTo(msg.Email); err != nil {
		return nil, fmt.Errorf("mail reply-to: %w", err)
	}
	out.Subject("New Contact Form Submission from " + msg.Name)
	out.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s\n", msg.Name, msg.Email, msg.Message))
	out.AddAlternativeString(mail.TypeTextHTML, fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>\n<p><strong>Name:</strong> %s</p>\n<p><strong>Email:</strong> %s</p>\n<p><strong>Message:</strong> %s</p>\n",
		html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message),
	))
	return out, nil
}
