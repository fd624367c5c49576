package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"

	"absence-digest-bot/internal/adapters/gcal"
	"absence-digest-bot/internal/adapters/notify"
	"absence-digest-bot/internal/adapters/slackdir"
	"absence-digest-bot/internal/domain"
	"absence-digest-bot/internal/infra/cache"
	"absence-digest-bot/internal/infra/config"
	httpinfra "absence-digest-bot/internal/infra/http"
	applog "absence-digest-bot/internal/infra/log"
	"absence-digest-bot/internal/infra/metrics"
	"absence-digest-bot/internal/usecase/digest"
	"absence-digest-bot/internal/usecase/schedule"
)

func main() {
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

	ctx := context.Background()
	slackClient := slack.New(cfg.Slack.Token)
	directory := slackdir.New(slackClient, cfg.Directory.Domain)
	source, err := gcal.New(ctx, cfg.Calendar.CredentialsFile, loc)
	if err != nil {
		logger.Fatal().Err(err).Msg("calendar client init failed")
	}
	notifier := buildNotifier(cfg, slackClient, logger)

	engine := digest.NewService(directory, source, keyword.MatchString, period, loc, logger)

	var guard domain.Cache
	if cfg.RedisAddr != "" {
		guard = cache.NewRedis(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	run := func() { announce(engine, notifier, guard, loc, logger) }

	scheduler := schedule.NewService(loc, logger)
	if err := scheduler.Register(cfg.Digest.TriggerTime, run); err != nil {
		logger.Fatal().Err(err).Msg("trigger registration failed")
	}
	scheduler.Start()

	srv := httpinfra.NewServer(logger)
	go func() {
		if err := srv.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("ops HTTP server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info().Msg("announcer: shutting down")
	<-scheduler.Stop().Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// announce runs one scheduled invocation: build the digest and deliver it,
// unless the engine reports there is nothing to announce.
func announce(engine *digest.Service, notifier domain.Notifier, guard domain.Cache, loc *time.Location, logger zerolog.Logger) {
	runLog := logger.With().Str("run_id", uuid.NewString()).Logger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	d, err := engine.BuildDigest(ctx, time.Now().In(loc))
	if errors.Is(err, digest.ErrNothingToAnnounce) {
		metrics.DigestRuns.WithLabelValues("skipped").Inc()
		runLog.Info().Msg("announcer: nothing to announce")
		return
	}
	if err != nil {
		metrics.DigestRuns.WithLabelValues("error").Inc()
		runLog.Error().Err(err).Msg("announcer: digest build failed")
		return
	}

	deliver := func() error { return notifier.Post(ctx, d.Text) }
	if guard != nil {
		key := "absence-digest:" + d.Date.Format("2006-01-02")
		err = guard.Once(key, 24*time.Hour, deliver)
	} else {
		err = deliver()
	}
	if err != nil {
		metrics.DigestRuns.WithLabelValues("error").Inc()
		runLog.Error().Err(err).Msg("announcer: delivery failed")
		return
	}
	metrics.DigestRuns.WithLabelValues("posted").Inc()
	runLog.Info().Bool("primary", d.Primary).Int("lines", len(d.Lines)).Msg("announcer: digest posted")
}

func buildNotifier(cfg config.AppConfig, slackClient *slack.Client, logger zerolog.Logger) domain.Notifier {
	switch cfg.Notifier {
	case "slack":
		return notify.NewSlack(slackClient, cfg.Slack.Channel)
	case "telegram":
		if cfg.Telegram.Token == "" || cfg.Telegram.ChatID == 0 {
			logger.Fatal().Msg("TG_BOT_TOKEN and TG_CHAT_ID must be set for the telegram notifier")
		}
		api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			logger.Fatal().Err(err).Msg("telegram bot init failed")
		}
		return notify.NewTelegram(api, cfg.Telegram.ChatID)
	default:
		logger.Fatal().Str("notifier", cfg.Notifier).Msg("unknown notifier backend")
		return nil
	}
}
