package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	TwitterBearerToken string `env:"TWITTER_BEARER_TOKEN"`

	DataFile  string `env:"DATA_FILE" default:"data.json"`
	PostsFile string `env:"POSTS_FILE" default:"initial-pull.json"`
	RawDir    string `env:"RAW_DIR" default:"raw"`
	RedisURL  string `env:"REDIS_URL"`

	Targets  string `env:"TARGETS" default:"rainmakercorp,ADoricko"`
	Keywords string `env:"KEYWORDS" default:"rain maker,rainmaker corp,cloud seeding,weather modification"`

	ScoreHistoryDays int `env:"SCORE_HISTORY_DAYS" default:"90"`
	MaxRiskAlerts    int `env:"MAX_RISK_ALERTS" default:"50"`
	TopMentionsCount int `env:"TOP_MENTIONS_COUNT" default:"20"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.ScoreHistoryDays <= 0 {
		return errors.New("SCORE_HISTORY_DAYS must be positive")
	}
	if cfg.MaxRiskAlerts <= 0 {
		return errors.New("MAX_RISK_ALERTS must be positive")
	}
	if cfg.TopMentionsCount <= 0 {
		return errors.New("TOP_MENTIONS_COUNT must be positive")
	}
	return nil
}

// RequireTwitterToken fails when no bearer token is configured. Only the
// collect path talks to the Twitter API, so Load does not enforce this.
func (c *Config) RequireTwitterToken() error {
	if c.TwitterBearerToken == "" {
		return errors.New("TWITTER_BEARER_TOKEN is required")
	}
	return nil
}

// TargetList returns the tracked account handles, prefixed with "@".
func (c *Config) TargetList() []string {
	targets := splitCSV(c.Targets)
	for i, t := range targets {
		if !strings.HasPrefix(t, "@") {
			targets[i] = "@" + t
		}
	}
	return targets
}

// KeywordList returns the tracked brand keywords.
func (c *Config) KeywordList() []string {
	return splitCSV(c.Keywords)
}

// SearchQueries builds the Twitter recent-search queries: one per target
// handle plus one OR-query over the brand keywords. Retweets are excluded.
func (c *Config) SearchQueries() []string {
	queries := make([]string, 0, len(c.TargetList())+1)
	for _, t := range c.TargetList() {
		queries = append(queries, t+" -is:retweet")
	}
	keywords := c.KeywordList()
	if len(keywords) > 0 {
		quoted := make([]string, len(keywords))
		for i, k := range keywords {
			quoted[i] = `"` + k + `"`
		}
		queries = append(queries, strings.Join(quoted, " OR ")+" -is:retweet")
	}
	return queries
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
