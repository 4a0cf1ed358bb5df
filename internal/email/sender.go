package email

import (
	"errors"
	"log"

	gomail "gopkg.in/gomail.v2"

	"hr-dashboard/config"
)

// Sender delivers a single HTML email. Implementations report success or
// failure and nothing else; the core never inspects delivery internals.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender sends mail through a configured SMTP relay using gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a sender from SMTP configuration.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	return nil
}

// NoopSender is used when SMTP is not configured; every send fails softly so
// callers log and move on.
type NoopSender struct{}

var _ Sender = (*NoopSender)(nil)

func (NoopSender) Send(to, subject, htmlBody string) error {
	return errors.New("email delivery is not configured")
}
