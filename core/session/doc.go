// Package session provides pluggable server-side session management keyed by
// an opaque id carried in a signed cookie.
//
// # Core Components
//
//   - Session: the per-client key/value data container
//   - Manager: the shared lifecycle logic (mint, resume, save, delete)
//   - Store: the byte-level persistence interface implemented per backend
//
// The Manager owns everything backends have in common: id minting, the
// serializer, and the load/save/delete bookkeeping. Stores only move bytes,
// so adding a backend means implementing three methods.
//
// # Basic Usage
//
//	store, err := sessionstore.New(cfg, nil, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	manager := session.NewManager(store,
//		session.WithTTL(time.Hour),
//		session.WithSerializer(serializer.JSON{}),
//	)
//
//	sess := manager.New()          // fresh id, empty data
//	sess.Set("locale", "en_US")
//	if err := manager.Save(ctx, sess); err != nil {
//		log.Printf("session save failed: %v", err)
//	}
//
//	same, _ := manager.Get(ctx, sess.ID())
//	_ = same.GetString("locale")   // "en_US"
//
// # Data and Bookkeeping
//
// A session has two tiers. Internal state (the id, the deleted flag) lives
// in unexported struct fields and can never appear in serialized output.
// Everything else lives in the data map, which is what iteration, equality
// and serialization see. Reading an unset data key returns nil rather than
// failing; deleting an unset key returns ErrKeyNotFound.
//
// # Lifecycle
//
// Sessions move through Unloaded -> Loaded -> (Saved | Deleted). Manager.Get
// performs the load; a backend miss or corrupt payload resumes as an empty
// session, which is the normal first-visit case. Save is a checkpoint, not a
// terminal state. Delete clears memory and storage and is terminal: a later
// Save returns ErrSessionDeleted.
//
// # Concurrency
//
// There is no cross-request mutual exclusion per session id. Two in-flight
// requests bearing the same cookie each load a copy, mutate independently,
// and the last Save wins, silently discarding the other's writes. This
// last-writer-wins behavior is a deliberate, documented property of the
// design; session data is supplementary state, not a system of record.
package session
