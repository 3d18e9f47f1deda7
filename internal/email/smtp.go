package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers messages through a plain SMTP relay.
type SMTPSender struct {
	dialer dialer
	from   Address
	to     Address
}

func NewSMTPSender(cfg SMTPConfig, from, to Address) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
		to:     to,
	}
}

func (s *SMTPSender) Provider() string {
	return "smtp"
}

func (s *SMTPSender) Send(_ context.Context, msg *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from.Email, s.from.Name)
	m.SetAddressHeader("To", s.to.Email, s.to.Name)
	m.SetAddressHeader("Reply-To", msg.ReplyTo.Email, msg.ReplyTo.Name)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	if msg.Text != "" {
		m.AddAlternative("text/plain", msg.Text)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: smtp: %v", ErrProvider, err)
	}
	return nil
}
