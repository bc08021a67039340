package repository

import (
	"context"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

// AlertRepository favqulodda xabarlar tarixi
type AlertRepository interface {
	SaveAlert(ctx context.Context, alert entity.AlertRecord) error
	ListAlerts(ctx context.Context, limit int) ([]entity.AlertRecord, error)
}

// EmailSender xat yuborish provayderi (Resend, SendGrid, SMTP)
type EmailSender interface {
	Name() string
	Send(ctx context.Context, msg entity.EmailMessage) error
}

// AlertNotifier qo'shimcha kanal (Telegram)
type AlertNotifier interface {
	Notify(ctx context.Context, text string) error
}
