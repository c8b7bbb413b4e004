package application

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/Endogen/antique-catalogue-sub001/internal/config"
)

// Mailer delivers account mail over SMTP. When no SMTP host is configured
// the message body is logged instead so local setups still work.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewMailer() *Mailer {
	return &Mailer{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUser,
		Password: config.SMTPPassword,
		From:     config.SMTPFrom,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.Host == "" {
		log.Printf("[mail] smtp not configured, message for %s (%s): %s", to, subject, body)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.From, to, subject, body)

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg))
}

func (m *Mailer) SendVerification(to, token string) error {
	body := fmt.Sprintf("Welcome! Confirm your email address with this token:\n\n%s\n\nThe token expires in %d hours.", token, config.VerifyTokenHours)
	return m.Send(to, "Verify your email", body)
}

func (m *Mailer) SendPasswordReset(to, token string) error {
	body := fmt.Sprintf("A password reset was requested for your account. Reset token:\n\n%s\n\nThe token expires in %d hours. If you did not request this, ignore this mail.", token, config.ResetTokenHours)
	return m.Send(to, "Reset your password", body)
}
