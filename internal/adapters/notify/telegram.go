package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"absence-digest-bot/internal/domain"
	"absence-digest-bot/internal/infra/metrics"
)

// Telegram posts digests to a Telegram chat, for deployments that announce
// there instead of Slack.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram creates a Telegram notifier bound to one chat.
func NewTelegram(api *tgbotapi.BotAPI, chatID int64) *Telegram {
	return &Telegram{api: api, chatID: chatID}
}

var _ domain.Notifier = (*Telegram)(nil)

// Post sends the digest text to the configured chat, splitting it when it
// exceeds Telegram's message size limit.
func (t *Telegram) Post(ctx context.Context, text string) error {
	for _, chunk := range SplitMessage(text) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, chunk)); err != nil {
			metrics.PostErrors.Inc()
			return fmt.Errorf("telegram send: %w", err)
		}
	}
	return nil
}
