package sessionstore

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/core/session"
)

// Adapter names accepted by the factory.
const (
	AdapterFile   = "file"
	AdapterRedis  = "redis"
	AdapterMemory = "memory"
)

// Config selects and configures a storage backend from the environment.
type Config struct {
	// Adapter is the backend name: file, redis or memory.
	Adapter string `env:"SESSION_ADAPTER" envDefault:"file"`

	// Directory is the file adapter's storage directory. Empty means a
	// "sessions" directory under the OS temp directory.
	Directory string `env:"SESSION_DIR" envDefault:""`

	// Cleanup toggles the file adapter's stale-session sweep at startup.
	Cleanup bool `env:"SESSION_CLEANUP" envDefault:"true"`

	// TTL is the session duration, used for the sweep boundary and for
	// key-value retention.
	TTL time.Duration `env:"SESSION_DURATION" envDefault:"1h"`

	// KeyPrefix namespaces redis keys.
	KeyPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"session"`

	// Serializer is the payload format name, resolved by
	// serializer.ParseFormat: gob, json or msgpack.
	Serializer string `env:"SESSION_SERIALIZER" envDefault:"gob"`
}

// New resolves the configured adapter name into a store. The choice is made
// once at startup; an unknown name is ErrUnknownAdapter.
//
// The redis adapter borrows the injected client rather than opening its own
// connection, keeping connection lifecycle explicit and process-wide.
func New(cfg Config, client redis.UniversalClient, logger *slog.Logger) (session.Store, error) {
	switch cfg.Adapter {
	case AdapterFile:
		opts := []FileOption{WithFileLogger(logger)}
		if cfg.Cleanup {
			opts = append(opts, WithCleanup(cfg.TTL))
		}
		return NewFile(cfg.Directory, opts...)
	case AdapterRedis:
		return NewRedis(client, WithKeyPrefix(cfg.KeyPrefix))
	case AdapterMemory:
		return NewMemory(), nil
	default:
		return nil, ErrUnknownAdapter
	}
}
