package email

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/wneessen/go-mail"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

type smtpSender struct {
	host string
	from string
	send func(ctx context.Context, msg *mail.Msg) error
}

// NewSMTPSender to'g'ridan-to'g'ri SMTP orqali yuboruvchi (587 portda STARTTLS)
func NewSMTPSender(host, port, user, password, from string) (*smtpSender, error) {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port %q: %w", port, err)
	}

	client, err := mail.NewClient(host,
		mail.WithPort(portNum),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &smtpSender{
		host: host,
		from: from,
		send: func(ctx context.Context, msg *mail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
	}, nil
}

func (s *smtpSender) Name() string { return "smtp" }

// Send xatni yuborish
func (s *smtpSender) Send(ctx context.Context, msg entity.EmailMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m, err := buildMailMessage(s.from, msg)
	if err != nil {
		return err
	}
	if err := s.send(ctx, m); err != nil {
		return fmt.Errorf("smtp error: %w", err)
	}

	log.Printf("📧 SMTP: email sent to %s via %s", msg.To, s.host)
	return nil
}

// buildMailMessage manzillarni tekshiradi, sarlavhalarni go-mail kodlaydi
func buildMailMessage(from string, msg entity.EmailMessage) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
