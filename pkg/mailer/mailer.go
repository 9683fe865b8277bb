// Package mailer sends transactional email. Delivery is fire-and-forget at
// call sites: failures are logged, never retried, and never block the
// triggering request.
package mailer

import (
	"fmt"

	"github.com/example/foodcourt/pkg/config"
	"gopkg.in/gomail.v2"
)

type Sender interface {
	Send(recipient, subject, html string) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg *config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(recipient, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipient, err)
	}
	return nil
}
