package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkeye/Meet/internal/domain"
	"github.com/dkeye/Meet/internal/notify"
	"github.com/rs/zerolog/log"
)

var ErrSendFailed = errors.New("failed to send email")

// ContactService validates contact form submissions and hands them to a
// Mailer. It shares no state with the Engine.
type ContactService struct {
	mailer notify.Mailer
}

func NewContactService(m notify.Mailer) *ContactService {
	return &ContactService{mailer: m}
}

// Submit returns a domain validation error for bad input and ErrSendFailed
// when the mailer fails. Nothing is retried.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("module", "app.contact").Str("from", msg.Email).Msg("contact mail failed")
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	log.Info().Str("module", "app.contact").Str("from", msg.Email).Msg("contact mail sent")
	return nil
}
