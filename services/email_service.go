package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/zagross-express/zagross-admin-api/config"
)

// EmailInterface sends transactional email to customers.
type EmailInterface interface {
	SendEmail(toEmail, subject, body string) error
}

// SendGridService sends email through SendGrid.
type SendGridService struct {
	client *sendgrid.Client
	sender string
}

// NewSendGridService returns a SendGrid-backed email service, or nil
// when no API key is configured (email is optional).
func NewSendGridService(cfg *config.Config) *SendGridService {
	if cfg.SendGridAPIKey == "" {
		return nil
	}
	return &SendGridService{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		sender: cfg.EmailSender,
	}
}

// SendEmail sends a plain-text email to the specified recipient
func (s *SendGridService) SendEmail(toEmail, subject, body string) error {
	from := mail.NewEmail("Zagross Express", s.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}
