package mailing

import (
	"fmt"
	"strconv"

	"meal-planner/internal/utils"

	"gopkg.in/gomail.v2"
)

type (
	MailConfig struct {
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	// sender is the part of gomail.Dialer the mailer uses.
	sender interface {
		DialAndSend(m ...*gomail.Message) error
	}

	smtpMailer struct {
		config MailConfig
		dialer sender
	}
)

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func NewMailer(config MailConfig) (Mailer, error) {
	port, err := strconv.Atoi(config.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", config.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		config.SMTPHost,
		port,
		config.SMTPEmail,
		config.SMTPPassword,
	)
	return &smtpMailer{config: config, dialer: dialer}, nil
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	message := gomail.NewMessage()
	message.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	return m.dialer.DialAndSend(message)
}

// SendMail sends one HTML mail with the configured SMTP account.
func SendMail(toEmail string, subject string, body string) error {
	mailer, err := NewMailer(LoadMailConfig())
	if err != nil {
		return err
	}
	return mailer.SendMail(toEmail, subject, body)
}
