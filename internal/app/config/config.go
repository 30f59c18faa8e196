package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
	Providers Provider   `mapstructure:",squash"`
	Pacing    Pacing     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

type KiwiProvider struct {
	SearchAPIURL string        `mapstructure:"KIWI_PROVIDER_SEARCH_API_URL"`
	APIKey       string        `mapstructure:"KIWI_PROVIDER_API_KEY"`
	Timeout      time.Duration `mapstructure:"KIWI_PROVIDER_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"KIWI_PROVIDER_RATE_LIMIT"`
}

type Provider struct {
	KiwiProvider    KiwiProvider  `mapstructure:",squash"`
	Active          string        `mapstructure:"PROVIDER_ACTIVE"`
	LockTimeout     time.Duration `mapstructure:"PROVIDER_LOCK_TIMEOUT"`
	CacheExpiration time.Duration `mapstructure:"PROVIDER_CACHE_EXPIRATION"`
}

// Pacing configures the minimum spacing between successive provider calls
// per flow. Exploration flows issue far more calls, so they run with
// tighter spacing and shallower result limits.
type Pacing struct {
	SearchDelay     time.Duration `mapstructure:"PACING_SEARCH_DELAY"`
	BestMatchDelay  time.Duration `mapstructure:"PACING_BEST_MATCH_DELAY"`
	ExploreDelay    time.Duration `mapstructure:"PACING_EXPLORE_DELAY"`
	EverywhereDelay time.Duration `mapstructure:"PACING_EVERYWHERE_DELAY"`
}
