// Package notify delivers rendered digests over SMTP.
package notify

import (
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"

	"jobdigest/internal/digest"
)

// SMTPConfig holds delivery transport settings. The password is resolved at
// send time from the secrets package and never appears in the config file.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	To         string
	SenderName string
}

type Sender struct {
	cfg SMTPConfig
}

func NewSender(cfg SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers one digest with an HTML body and a plain text alternative.
// Failure leaves the digest untouched; the caller decides what to do with it.
func (s *Sender) Send(d *digest.Rendered) error {
	m := gomail.NewMessage()
	if s.cfg.SenderName != "" {
		m.SetAddressHeader("From", s.cfg.From, s.cfg.SenderName)
	} else {
		m.SetHeader("From", s.cfg.From)
	}
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", d.Subject)
	m.SetBody("text/plain", d.Text)
	m.AddAlternative("text/html", d.HTML)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	dialer.Timeout = 30 * time.Second

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send %q to %s: %w", d.Subject, s.cfg.To, err)
	}
	return nil
}
