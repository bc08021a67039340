package email

import (
	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// Config e-mail provayderlari sozlamalari
type Config struct {
	From           string
	ResendAPIKey   string
	SendGridAPIKey string
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPassword   string
}

// NewSender sozlamalarga qarab provayder tanlash: Resend, SendGrid, keyin SMTP.
func NewSender(cfg Config) (repository.EmailSender, error) {
	switch {
	case cfg.ResendAPIKey != "":
		return NewResendSender(cfg.ResendAPIKey, fromOr(cfg.From, "onboarding@resend.dev")), nil
	case cfg.SendGridAPIKey != "":
		return NewSendGridSender(cfg.SendGridAPIKey, fromOr(cfg.From, "noreply@example.com")), nil
	case cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPassword != "":
		port := cfg.SMTPPort
		if port == "" {
			port = "587"
		}
		sender, err := NewSMTPSender(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword, fromOr(cfg.From, cfg.SMTPUser))
		if err != nil {
			return nil, err
		}
		return sender, nil
	}
	return nil, entity.ErrNoEmailProvider
}

func fromOr(from, fallback string) string {
	if from != "" {
		return from
	}
	return fallback
}
