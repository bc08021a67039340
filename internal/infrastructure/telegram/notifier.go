package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// sender *tgbotapi.BotAPI ning xabar yuborish qismi
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type alertNotifier struct {
	bot    sender
	chatID int64
}

// NewAlertNotifier alertlarni Telegram guruhiga yuboruvchi
func NewAlertNotifier(token string, chatID int64) (repository.AlertNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	log.Printf("🤖 Telegram alert bot @%s ulandi", bot.Self.UserName)

	return &alertNotifier{bot: bot, chatID: chatID}, nil
}

// Notify matnni chatga yuborish
func (n *alertNotifier) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
