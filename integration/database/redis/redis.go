package redis

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection settings with environment variable mapping.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  uint          `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Connect creates a Redis client and verifies connectivity with a ping,
// retrying with exponential backoff before giving up. The returned client is
// process-wide and safe for concurrent use; closing it is the caller's
// responsibility at shutdown.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client := redis.NewClient(opts)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = cfg.RetryInterval

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, client.Ping(ctx).Err()
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(cfg.RetryAttempts))
	if err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisNotReady, err)
	}

	return client, nil
}

// Healthcheck returns a function suitable for readiness probes.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
