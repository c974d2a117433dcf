package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"newsquiz/internal/config"
)

// Mailer sends plain-text reports to the single configured recipient over an
// authenticated STARTTLS relay.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	to       string
	log      *logrus.Logger
}

func New(cfg *config.Config, log *logrus.Logger) *Mailer {
	return &Mailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		to:       cfg.NotificationEmail,
		log:      log,
	}
}

// Send delivers one message. Callers treat a returned error as best-effort:
// the pipeline logs it and moves on.
func (m *Mailer) Send(subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	msg := buildMessage(m.username, m.to, subject, body)

	if err := smtp.SendMail(addr, auth, m.username, []string{m.to}, msg); err != nil {
		return fmt.Errorf("failed to send email notification: %w", err)
	}

	m.log.Info("[Mailer] email notification sent successfully")
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
