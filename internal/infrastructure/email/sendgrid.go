package email

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

type sendGridSender struct {
	client *sendgrid.Client
	from   string
}

// NewSendGridSender SendGrid API orqali yuboruvchi
func NewSendGridSender(apiKey, from string) *sendGridSender {
	return &sendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func (s *sendGridSender) Name() string { return "sendgrid" }

// Send xatni yuborish (faqat text/plain)
func (s *sendGridSender) Send(ctx context.Context, msg entity.EmailMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendWithContext(ctx, buildSendGridMail(s.from, msg))
	if err != nil {
		return fmt.Errorf("sendgrid API error: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid API error: %d - %s", resp.StatusCode, resp.Body)
	}

	log.Printf("📧 SendGrid: email sent to %s", msg.To)
	return nil
}

func buildSendGridMail(from string, msg entity.EmailMessage) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", from))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	m.AddPersonalizations(p)

	m.AddContent(mail.NewContent("text/plain", msg.Body))
	return m
}
