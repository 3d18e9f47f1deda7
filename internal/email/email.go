package email

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/directory-web/internal/config"
)

// ErrProvider is wrapped by every failure reported by a mail provider.
var ErrProvider = errors.New("mail provider rejected the message")

type Address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Message is one outgoing email. From and To are filled by the sender from
// its configuration; Text is the plain body kept for logging.
type Message struct {
	ReplyTo Address
	Subject string
	HTML    string
	Text    string
}

type Sender interface {
	Send(ctx context.Context, msg *Message) error
	Provider() string
}

// NewSender picks the transport configured in cfg. Without credentials
// messages are only logged.
func NewSender(cfg config.MailConfig, logger *zerolog.Logger) Sender {
	if !cfg.Configured() {
		logger.Warn().Msg("No email service configured, contact messages will be logged")
		return NewLogSender(logger)
	}
	from := Address{Name: cfg.SenderName, Email: cfg.SenderEmail}
	to := Address{Name: cfg.RecipientName, Email: cfg.RecipientEmail}
	if cfg.Provider == "smtp" {
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
		}, from, to)
	}
	return NewBrevoSender(BrevoConfig{
		Endpoint: cfg.Endpoint,
		APIKey:   cfg.APIKey,
		Timeout:  cfg.Timeout,
	}, from, to, logger)
}
