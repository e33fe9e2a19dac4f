package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config is the runtime configuration for a brand run. Values come from the
// environment (optionally seeded by LoadEnv) and may be overridden by flags.
type Config struct {
	Env         string        `envconfig:"APP_ENV" default:"dev"`
	Brand       string        `envconfig:"BRAND"`
	OutputDir   string        `envconfig:"OUTPUT_DIR" default:"data" validate:"required"`
	MaxPosts    int           `envconfig:"MAX_POSTS" default:"20" validate:"min=1,max=100"`
	MaxArticles int           `envconfig:"MAX_ARTICLES" default:"10" validate:"min=1,max=100"`
	Language    string        `envconfig:"NEWS_LANGUAGE" default:"en" validate:"required"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s" validate:"gt=0"`

	Logging LoggingConfig `envconfig:"LOG"`
	NewsAPI NewsAPIConfig `envconfig:"NEWS_API"`
	Reddit  RedditConfig  `envconfig:"REDDIT"`
	RSS     RSSConfig     `envconfig:"RSS"`
	Valkey  ValkeyConfig  `envconfig:"VALKEY"`
}

type LoggingConfig struct {
	Level string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	File  string `envconfig:"FILE" default:"scraper_run.log"`
}

type NewsAPIConfig struct {
	Key      string `envconfig:"KEY"`
	Endpoint string `envconfig:"ENDPOINT" default:"https://newsapi.org/v2/everything" validate:"url"`
}

type RedditConfig struct {
	ClientID          string `envconfig:"CLIENT_ID"`
	ClientSecret      string `envconfig:"CLIENT_SECRET"`
	UserAgent         string `envconfig:"USER_AGENT" default:"brandpulse/0.1"`
	AuthURL           string `envconfig:"AUTH_URL" default:"https://www.reddit.com/api/v1/access_token" validate:"url"`
	APIURL            string `envconfig:"API_URL" default:"https://oauth.reddit.com" validate:"url"`
	Subreddit         string `envconfig:"SUBREDDIT" default:"all" validate:"required"`
	RequestsPerMinute int    `envconfig:"REQUESTS_PER_MINUTE" default:"60" validate:"min=1"`
}

type RSSConfig struct {
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	FeedURL string `envconfig:"FEED_URL" default:"https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"`
}

// ValkeyConfig enables the ingestion response cache when InitAddress is set.
type ValkeyConfig struct {
	InitAddress string        `envconfig:"INIT_ADDRESS"`
	Password    string        `envconfig:"PASSWORD"`
	TLS         bool          `envconfig:"TLS"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"1h"`
}

var validate = validator.New()

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
