package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// Config configures the Redis connection of the positions server.
type Config struct {
	URL string
	// PoolSize overrides the pool size from the URL when positive.
	PoolSize int
	// PingTimeout bounds the whole connection check, retries included.
	// Zero means 5s.
	PingTimeout time.Duration
}

// NewClient creates a Redis client and waits until the server answers a
// PING, retrying with exponential backoff until PingTimeout elapses.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	client := redis.NewClient(opts)

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxElapsedTime = timeout

	ping := func() error { return client.Ping(pingCtx).Err() }
	if err := backoff.Retry(ping, backoff.WithContext(b, pingCtx)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
