package email

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSender records messages in the log instead of delivering them.
type LogSender struct {
	logger *zerolog.Logger
}

func NewLogSender(logger *zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Provider() string {
	return "log"
}

func (s *LogSender) Send(_ context.Context, msg *Message) error {
	s.logger.Info().
		Str("from", msg.ReplyTo.Name+" <"+msg.ReplyTo.Email+">").
		Str("subject", msg.Subject).
		Str("message", msg.Text).
		Msg("Contact form submission (no email service configured)")
	return nil
}
