package email

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

type resendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender Resend API orqali yuboruvchi
func NewResendSender(apiKey, from string) *resendSender {
	return &resendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *resendSender) Name() string { return "resend" }

// Send xatni yuborish
func (s *resendSender) Send(ctx context.Context, msg entity.EmailMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("resend API error: %w", err)
	}

	log.Printf("📧 Resend: email %s sent to %s", sent.Id, msg.To)
	return nil
}
