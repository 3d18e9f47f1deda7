package contact

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/directory-web/internal/email"
	apperrors "github.com/jwalitptl/directory-web/pkg/errors"
	"github.com/jwalitptl/directory-web/pkg/metrics"
	"github.com/jwalitptl/directory-web/pkg/validator"
)

// Validation failures carry the message shown to the visitor.
var (
	ErrMissingFields = apperrors.NewBadRequest("Todos los campos son requeridos", nil)
	ErrInvalidEmail  = apperrors.NewBadRequest("Email inválido", nil)
)

const SubjectPrefix = "[Contacto] "

type Submission struct {
	Name    string `json:"nombre" validate:"required"`
	Email   string `json:"email" validate:"required,loose_email"`
	Subject string `json:"asunto" validate:"required"`
	Message string `json:"mensaje" validate:"required"`
}

type ContactServicer interface {
	Submit(ctx context.Context, sub *Submission) error
}

type Service struct {
	sender    email.Sender
	validator *validator.Validator
	metrics   *metrics.Metrics
}

func NewService(sender email.Sender, v *validator.Validator, m *metrics.Metrics) *Service {
	return &Service{
		sender:    sender,
		validator: v,
		metrics:   m,
	}
}

// Validate returns ErrMissingFields when any field is empty, else
// ErrInvalidEmail for a malformed address.
func (s *Service) Validate(sub *Submission) error {
	fieldErrs, err := s.validator.Validate(sub)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if len(fieldErrs) == 0 {
		return nil
	}
	for _, fe := range fieldErrs {
		if fe.Tag == "required" {
			return ErrMissingFields
		}
	}
	return ErrInvalidEmail
}

// Submit validates and relays one submission. There is no retry; a provider
// failure is returned as an internal error.
func (s *Service) Submit(ctx context.Context, sub *Submission) error {
	if err := s.Validate(sub); err != nil {
		s.metrics.IncContact("rejected")
		return err
	}

	html, err := email.ContactHTML(email.ContactFields{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: sub.Subject,
		Message: sub.Message,
	})
	if err != nil {
		return apperrors.NewInternal(fmt.Errorf("failed to render contact email: %w", err))
	}

	msg := &email.Message{
		ReplyTo: email.Address{Name: sub.Name, Email: sub.Email},
		Subject: SubjectPrefix + sub.Subject,
		HTML:    html,
		Text:    sub.Message,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.metrics.IncContact("failed")
		log.Error().Err(err).Str("provider", s.sender.Provider()).Msg("Contact API error")
		return apperrors.NewInternal(err)
	}

	s.metrics.IncContact(s.sender.Provider())
	return nil
}
