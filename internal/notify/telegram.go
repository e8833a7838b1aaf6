package notify

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram pushes publish-run status messages to the site publisher. A
// nil *Telegram is a no-op, so callers never have to branch on whether
// notifications are configured.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if token == "" {
		slog.Info("Telegram notifications disabled")
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) SendMessage(text string) error {
	if t == nil {
		return nil
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	_, err := t.bot.Send(msg)
	if err != nil {
		slog.Error("Error sending message", "error", err)
	}
	return err
}
