package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"regexp"
	"time"

	"github.com/slack-go/slack"

	"absence-digest-bot/internal/adapters/gcal"
	"absence-digest-bot/internal/adapters/notify"
	"absence-digest-bot/internal/adapters/slackdir"
	"absence-digest-bot/internal/domain"
	"absence-digest-bot/internal/infra/config"
	applog "absence-digest-bot/internal/infra/log"
	"absence-digest-bot/internal/usecase/digest"
)

// runonce builds the digest for the current moment and prints it, or posts
// it with -post. Meant for operators checking what the next trigger would
// announce.
func main() {
	post := flag.Bool("post", false, "post the digest to the channel instead of printing it")
	at := flag.String("at", "", "build the digest as of this RFC3339 instant instead of now")
	flag.Parse()

	cfg := config.Load()
	logger := applog.NewLogger(cfg.AppEnv)

	loc, err := time.LoadLocation(cfg.TZ)
	if err != nil {
		logger.Fatal().Err(err).Str("tz", cfg.TZ).Msg("invalid timezone")
	}
	period, err := domain.ParsePeriod(cfg.Digest.Period)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid search period")
	}
	keyword, err := regexp.Compile(cfg.Digest.Keyword)
	if err != nil {
		logger.Fatal().Err(err).Str("keyword", cfg.Digest.Keyword).Msg("invalid search keyword")
	}
	if cfg.Slack.Token == "" {
		logger.Fatal().Msg("SLACK_APP_TOKEN is not set")
	}

	now := time.Now().In(loc)
	if *at != "" {
		now, err = time.Parse(time.RFC3339, *at)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid -at instant")
		}
		now = now.In(loc)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	slackClient := slack.New(cfg.Slack.Token)
	directory := slackdir.New(slackClient, cfg.Directory.Domain)
	source, err := gcal.New(ctx, cfg.Calendar.CredentialsFile, loc)
	if err != nil {
		logger.Fatal().Err(err).Msg("calendar client init failed")
	}

	engine := digest.NewService(directory, source, keyword.MatchString, period, loc, logger)

	d, err := engine.BuildDigest(ctx, now)
	if errors.Is(err, digest.ErrNothingToAnnounce) {
		logger.Info().Msg("nothing to announce")
		return
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("digest build failed")
	}

	if !*post {
		fmt.Println(d.Text)
		return
	}
	notifier := notify.NewSlack(slackClient, cfg.Slack.Channel)
	if err := notifier.Post(ctx, d.Text); err != nil {
		logger.Fatal().Err(err).Msg("delivery failed")
	}
	logger.Info().Bool("primary", d.Primary).Int("lines", len(d.Lines)).Msg("digest posted")
}
