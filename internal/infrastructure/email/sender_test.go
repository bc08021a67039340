package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

func TestNewSender_ProviderPriority(t *testing.T) {
	s, err := NewSender(Config{ResendAPIKey: "re_x", SendGridAPIKey: "SG.x"})
	require.NoError(t, err)
	require.Equal(t, "resend", s.Name())

	s, err = NewSender(Config{SendGridAPIKey: "SG.x", SMTPHost: "smtp.example.com", SMTPUser: "u", SMTPPassword: "p"})
	require.NoError(t, err)
	require.Equal(t, "sendgrid", s.Name())

	s, err = NewSender(Config{SMTPHost: "smtp.example.com", SMTPUser: "u", SMTPPassword: "p"})
	require.NoError(t, err)
	require.Equal(t, "smtp", s.Name())

	_, err = NewSender(Config{SMTPHost: "smtp.example.com"})
	require.ErrorIs(t, err, entity.ErrNoEmailProvider)
}

func TestValidate(t *testing.T) {
	require.NoError(t, entity.EmailMessage{To: "a@b.c", Subject: "s", Body: "b"}.Validate())
	require.ErrorIs(t, entity.EmailMessage{To: "a@b.c", Subject: "s"}.Validate(), entity.ErrMissingEmailFields)
}

func TestSMTPSender_Send(t *testing.T) {
	s, err := NewSMTPSender("smtp.example.com", "587", "user", "pass", "alerts@example.com")
	require.NoError(t, err)

	var got *mail.Msg
	s.send = func(ctx context.Context, msg *mail.Msg) error {
		got = msg
		return nil
	}

	err = s.Send(context.Background(), entity.EmailMessage{
		To:      "guardian@example.com",
		Subject: "🚨 EMERGENCY ALERT: Fear Detected",
		Body:    "line one\nline two",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	to, err := got.GetRecipients()
	require.NoError(t, err)
	require.Equal(t, []string{"guardian@example.com"}, to)

	var buf bytes.Buffer
	_, err = got.WriteTo(&buf)
	require.NoError(t, err)
	text := buf.String()
	require.Contains(t, text, "Subject: =?UTF-8?q?")
	require.Contains(t, text, "From: <alerts@example.com>")
	require.Contains(t, text, "line one")
}

func TestSMTPSender_RejectsHeaderInjection(t *testing.T) {
	s, err := NewSMTPSender("smtp.example.com", "587", "user", "pass", "alerts@example.com")
	require.NoError(t, err)

	called := false
	s.send = func(ctx context.Context, msg *mail.Msg) error {
		called = true
		return nil
	}

	err = s.Send(context.Background(), entity.EmailMessage{
		To:      "guardian@example.com",
		Subject: "hi\r\nBcc: victim@evil.com",
		Body:    "body",
	})
	require.ErrorIs(t, err, entity.ErrInvalidEmailHeader)
	require.False(t, called)

	err = s.Send(context.Background(), entity.EmailMessage{To: "not an address", Subject: "hi", Body: "body"})
	require.Error(t, err)
	require.False(t, called)
}

func TestNewSMTPSender_InvalidPort(t *testing.T) {
	_, err := NewSMTPSender("smtp.example.com", "abc", "user", "pass", "alerts@example.com")
	require.Error(t, err)
}

func TestBuildSendGridMail(t *testing.T) {
	m := buildSendGridMail("noreply@example.com", entity.EmailMessage{To: "x@y.z", Subject: "hi", Body: "body"})
	require.Equal(t, "hi", m.Subject)
	require.Equal(t, "noreply@example.com", m.From.Address)
	require.Len(t, m.Personalizations, 1)
	require.Equal(t, "x@y.z", m.Personalizations[0].To[0].Address)
	require.Equal(t, "text/plain", m.Content[0].Type)
}
