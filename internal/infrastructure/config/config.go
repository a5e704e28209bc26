package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds the configuration of the positions server and CLI.
type Config struct {
	// Client side of the positions API.
	PositionsAPIURL        string        `env:"POSITIONS_API_URL"         envDefault:"http://localhost:8080" validate:"required,url"`
	PositionsAPITimeout    time.Duration `env:"POSITIONS_API_TIMEOUT"     envDefault:"10s"                   validate:"gt=0"`
	PositionsAPIMaxRetries int           `env:"POSITIONS_API_MAX_RETRIES" envDefault:"3"                     validate:"gte=0"`
	SaveTimeout            time.Duration `env:"SAVE_TIMEOUT"              envDefault:"30s"                   validate:"gt=0"`

	RedisURL         string        `env:"REDIS_URL"          envDefault:"redis://localhost:6379" validate:"required"`
	RedisPoolSize    int           `env:"REDIS_POOL_SIZE"    envDefault:"0"                      validate:"gte=0"`
	RedisPingTimeout time.Duration `env:"REDIS_PING_TIMEOUT" envDefault:"5s"`

	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080" validate:"required,numeric"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// HTTPRateLimit is requests per second per client; zero disables it.
	HTTPRateLimit float64 `env:"HTTP_RATE_LIMIT" envDefault:"0"  validate:"gte=0"`
	HTTPRateBurst int     `env:"HTTP_RATE_BURST" envDefault:"20" validate:"gte=1"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info" validate:"oneof=debug info warn error disabled"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`

	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h" validate:"gt=0"`
}

// Load parses the environment and rejects out of range values.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// RateLimitEnabled reports whether the server should throttle clients.
func (c *Config) RateLimitEnabled() bool {
	return c.HTTPRateLimit > 0
}
