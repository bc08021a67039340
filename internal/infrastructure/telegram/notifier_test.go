package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestAlertNotifier_Notify(t *testing.T) {
	bot := &fakeBot{}
	n := &alertNotifier{bot: bot, chatID: -100123}

	require.NoError(t, n.Notify(context.Background(), "fear detected"))
	require.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	require.Equal(t, int64(-100123), msg.ChatID)
	require.Equal(t, "fear detected", msg.Text)
}

func TestAlertNotifier_NotifyError(t *testing.T) {
	n := &alertNotifier{bot: &fakeBot{err: errors.New("forbidden")}, chatID: 1}
	require.Error(t, n.Notify(context.Background(), "x"))
}
