package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Publish  Publish
	Telegram Telegram
}

type Publish struct {
	OutputDir string `envconfig:"OUTPUT_DIR" default:"public"`
	Schedule  string `envconfig:"PUBLISH_SCHEDULE" default:"30 6 * * *"`
	// Season pins a specific year; 0 means probe for the latest season
	// with published data.
	Season int `envconfig:"SEASON"`
	// Spotlight names a player to feature on the leaderboard page.
	// Misspellings are tolerated; the closest name match wins.
	Spotlight string `envconfig:"SPOTLIGHT_PLAYER"`
}

// Telegram is optional; leave the token empty to disable notifications.
type Telegram struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if _, err := cron.ParseStandard(c.Publish.Schedule); err != nil {
		return nil, fmt.Errorf("invalid publish schedule %q: %w", c.Publish.Schedule, err)
	}
	return &c, nil
}
