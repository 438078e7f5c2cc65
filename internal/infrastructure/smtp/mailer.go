package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/notifications-api/internal/config"
)

// Mailer sends emails.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	name     string
	login    string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPEmail,
		name:     cfg.SMTPName,
		login:    cfg.SMTPLogin,
		password: cfg.SMTPPassword,
	}
}

// SendEmail delivers a plaintext message through the configured relay.
// The call blocks for the full network round trip; callers that must not
// wait dispatch it from their own goroutine.
func (m *mailer) SendEmail(to, subject, body string) error {
	fromHeader := m.from
	if m.name != "" {
		fromHeader = fmt.Sprintf("%s <%s>", m.name, m.from)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", fromHeader, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.login != "" {
		auth = smtp.PlainAuth("", m.login, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
