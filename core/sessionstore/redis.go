package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/core/session"
)

// defaultKeyPrefix namespaces session keys in a store shared with
// unrelated data.
const defaultKeyPrefix = "session"

// Redis stores sessions in a Redis-compatible key-value store under
// "{prefix}:{id}". The client is injected and shared by every request in
// the process; connection retry and pipelining are the client's concern,
// this store adds no locking of its own.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures the Redis store.
type RedisOption func(*Redis)

// WithKeyPrefix overrides the default "session" key namespace.
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// NewRedis creates a Redis-backed store using the given client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) (*Redis, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}

	store := &Redis{client: client, prefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// Load implements session.Store. An absent or TTL-expired key is a miss.
func (r *Redis) Load(ctx context.Context, id string) ([]byte, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

// Save implements session.Store. The value and its TTL are set in a single
// SET command, so an active session's server-side expiry slides forward on
// every save; a value without a refreshed TTL would leak storage forever.
func (r *Redis) Save(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(id), data, ttl).Err()
}

// Delete implements session.Store. DEL of a missing key is a no-op.
func (r *Redis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *Redis) key(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}
