package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig describes the announcer configuration.
type AppConfig struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	TZ       string `envconfig:"TZ" default:"Asia/Tokyo"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	Slack struct {
		Token   string `envconfig:"SLACK_APP_TOKEN"`
		Channel string `envconfig:"SLACK_CHANNEL" default:"#attendance"`
	} `envconfig:""`

	Telegram struct {
		Token  string `envconfig:"TG_BOT_TOKEN"`
		ChatID int64  `envconfig:"TG_CHAT_ID"`
	} `envconfig:""`

	// Notifier selects the delivery backend: slack or telegram.
	Notifier string `envconfig:"NOTIFIER" default:"slack"`

	Directory struct {
		Domain string `envconfig:"MEMBER_DOMAIN" default:"example.com"`
	} `envconfig:""`

	Calendar struct {
		CredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE"`
	} `envconfig:""`

	Digest struct {
		Period      string `envconfig:"SEARCH_PERIOD" default:"day"`
		Keyword     string `envconfig:"SEARCH_KEYWORD" default:"休暇"`
		TriggerTime string `envconfig:"TRIGGER_TIME" default:"9:00"`
	} `envconfig:""`

	// RedisAddr enables the once-per-day delivery guard when set.
	RedisAddr string `envconfig:"REDIS_ADDR"`
}

// Load reads the config from the environment.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
