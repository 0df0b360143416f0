// Package redis provides Redis client initialization and health checking for
// the session storage backend.
//
// Connect wraps the go-redis client with URL validation, exponential-backoff
// retries and a ping-based connectivity check, so a briefly unavailable
// Redis at boot does not kill the process:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	store, err := sessionstore.NewRedis(client)
//
// The client is created once per process and injected into every consumer;
// reconnection after a dropped connection is handled inside go-redis, not
// re-implemented here.
//
// Both redis:// and rediss:// (TLS) URL schemes are supported.
package redis
