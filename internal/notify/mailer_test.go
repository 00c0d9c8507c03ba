package notify

import (
	"context"
	"testing"

	"github.com/dkeye/Meet/internal/domain"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestSMTPMailer_Build(t *testing.T) {
	req := require.New(t)
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "bot@example.com", To: "inbox@example.com"})

	out, err := m.build(domain.ContactMessage{Name: "Ann", Email: "ann@example.com", Message: "<b>hi</b>"})
	req.NoError(err)

	req.Equal([]string{"New Contact Form Submission from Ann"}, out.GetGenHeader(mail.HeaderSubject))
	rcpts, err := out.GetRecipients()
	req.NoError(err)
	req.Equal([]string{"inbox@example.com"}, rcpts)
}

func TestSMTPMailer_Build_RejectsBadReplyTo(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Username: "bot@example.com", To: "inbox@example.com"})

	_, err := m.build(domain.ContactMessage{Name: "Ann", Email: "not an address", Message: "hi"})
	require.Error(t, err)
}

func TestSMTPMailer_Send_WithoutHost(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{To: "inbox@example.com"})

	err := m.Send(context.Background(), domain.ContactMessage{Name: "Ann", Email: "ann@example.com", Message: "hi"})
	require.Error(t, err)
}
