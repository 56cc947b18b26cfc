// Package mail sends plain-text notification mail through the SMTP
// server configured in site settings.
package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

var ErrSMTPNotConfigured = errors.New("smtp is not configured")

type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func (c SMTPConfig) Ready() bool {
	return c.Host != "" && c.Port != "" && c.From != ""
}

type Message struct {
	To      string
	Subject string
	Body    string
}

// Bytes renders the RFC 822 payload handed to the SMTP DATA command.
func (m Message) Bytes(from string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

type Mailer struct{}

func NewMailer() *Mailer {
	return &Mailer{}
}

func (m *Mailer) Send(config SMTPConfig, msg Message) error {
	if !config.Ready() {
		return ErrSMTPNotConfigured
	}

	var auth smtp.Auth
	if config.User != "" {
		auth = smtp.PlainAuth("", config.User, config.Pass, config.Host)
	}

	addr := config.Host + ":" + config.Port
	return smtp.SendMail(addr, auth, config.From, []string{msg.To}, msg.Bytes(config.From))
}
