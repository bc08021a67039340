package entity

import (
	"strings"
	"time"
)

// AlertRecord yuborilgan (yoki yuborilmagan) favqulodda xabar
type AlertRecord struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"sessionId"`
	Emotion    Emotion   `json:"emotion"`
	Confidence float64   `json:"confidence"`
	Recipient  string    `json:"recipient"`
	Channel    string    `json:"channel"` // "email", "telegram"
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EmailMessage yuboriladigan xat
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate majburiy maydonlarni tekshirish
func (m EmailMessage) Validate() error {
	if strings.TrimSpace(m.To) == "" || strings.TrimSpace(m.Subject) == "" || strings.TrimSpace(m.Body) == "" {
		return ErrMissingEmailFields
	}
	if strings.ContainsAny(m.To, "\r\n") || strings.ContainsAny(m.Subject, "\r\n") {
		return ErrInvalidEmailHeader
	}
	return nil
}
