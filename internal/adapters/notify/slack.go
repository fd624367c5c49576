package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"absence-digest-bot/internal/domain"
	"absence-digest-bot/internal/infra/metrics"
)

// Slack posts digests to a Slack channel via chat.postMessage.
type Slack struct {
	client  *slack.Client
	channel string
}

// NewSlack creates a Slack notifier bound to one channel.
func NewSlack(client *slack.Client, channel string) *Slack {
	return &Slack{client: client, channel: channel}
}

var _ domain.Notifier = (*Slack)(nil)

// Post sends the digest text to the configured channel.
func (s *Slack) Post(ctx context.Context, text string) error {
	if _, _, err := s.client.PostMessageContext(ctx, s.channel, slack.MsgOptionText(text, false)); err != nil {
		metrics.PostErrors.Inc()
		return fmt.Errorf("slack post to %s: %w", s.channel, err)
	}
	return nil
}
