package slackdir

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"absence-digest-bot/internal/domain"
)

// slackBotID is the built-in Slackbot account present in every workspace.
const slackBotID = "USLACKBOT"

// Directory lists workspace members through the Slack users.list API.
type Directory struct {
	client *slack.Client
	domain string
}

// New creates a directory restricted to members of the given email domain.
func New(client *slack.Client, emailDomain string) *Directory {
	return &Directory{client: client, domain: emailDomain}
}

var _ domain.Directory = (*Directory)(nil)

// ListActiveIdentities returns the addresses of active human members.
func (d *Directory) ListActiveIdentities(ctx context.Context) ([]domain.Identity, error) {
	users, err := d.client.GetUsersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("slack users.list: %w", err)
	}
	return Filter(users, d.domain), nil
}

// Filter keeps active human members of the workspace domain. Deactivated
// accounts, bot accounts and Slackbot itself never own a leave calendar.
func Filter(users []slack.User, emailDomain string) []domain.Identity {
	suffix := "@" + emailDomain
	var ids []domain.Identity
	for _, u := range users {
		if u.Deleted || u.IsBot || u.ID == slackBotID {
			continue
		}
		if u.Profile.Email == "" || !strings.HasSuffix(u.Profile.Email, suffix) {
			continue
		}
		ids = append(ids, domain.Identity(u.Profile.Email))
	}
	return ids
}
