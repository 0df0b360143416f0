// Package sessionstore provides the physical storage backends behind the
// session manager.
//
// Three adapters implement session.Store:
//
//   - File: one file per session id in a flat directory, with an optional
//     stale-file sweep at startup
//   - Redis: one key per session id under a configurable prefix, with the
//     TTL refreshed on every save
//   - Memory: an in-process map with per-entry expiry, for tests and
//     single-process deployments
//
// The adapter is selected once at startup, usually from configuration:
//
//	var cfg sessionstore.Config
//	config.MustLoad(&cfg)
//
//	store, err := sessionstore.New(cfg, redisClient, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager := session.NewManager(store, session.WithTTL(cfg.TTL))
//
// # Expiry Semantics
//
// The Redis adapter enforces the session duration server-side: every save
// sets the value and its TTL in one command, so an active session's expiry
// slides forward while an abandoned one ages out.
//
// The File adapter has no per-read expiry; retention is handled by the
// startup sweep, which removes files whose age has reached the configured
// duration (the boundary is inclusive: a file exactly duration old is
// removed). The sweep is best-effort maintenance. A stale file that escapes
// it is indistinguishable from a session whose cookie already expired
// client-side, so correctness never depends on the sweep running.
package sessionstore
