package session

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/sessionkit/core/serializer"
)

// DefaultTTL is the session duration used when none is configured.
const DefaultTTL = time.Hour

// Manager carries the storage-independent half of the session lifecycle:
// id handling, serialization, and the load/save/delete bookkeeping shared by
// every backend. Concrete stores only move bytes.
type Manager struct {
	store      Store
	serializer serializer.Serializer
	ttl        time.Duration
}

// NewManager creates a session manager on top of store. By default sessions
// are gob-encoded and live for DefaultTTL; both are adjustable via options.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:      store,
		serializer: serializer.Gob{},
		ttl:        DefaultTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Option configures a Manager.
type Option func(*Manager)

// WithSerializer selects the serializer used for stored payloads.
func WithSerializer(s serializer.Serializer) Option {
	return func(m *Manager) {
		if s != nil {
			m.serializer = s
		}
	}
}

// WithTTL sets the session duration used for storage retention and
// cookie expiration.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// New mints a session with a fresh id and empty data. Nothing is stored
// until Save is called.
func (m *Manager) New() *Session {
	return newSession()
}

// Get resumes the session with the given id from storage.
//
// A backend miss or a corrupt stored payload yields an empty session with
// the same id: both are equivalent to an expired session from the user's
// point of view and are never surfaced as errors. A real backend failure is
// returned wrapped in ErrLoadSession, together with an empty session the
// caller may choose to proceed with (availability over consistency).
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := m.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return resume(id, nil), nil
		}
		return resume(id, nil), errors.Join(ErrLoadSession, err)
	}

	data, err := m.serializer.Deserialize(raw)
	if err != nil {
		// Corrupt payload reads the same as an expired session.
		return resume(id, nil), nil
	}
	return resume(id, data), nil
}

// Save persists the session's current data, refreshing the server-side TTL.
// Saved is a checkpoint, not a terminal state: the session stays usable and
// may be saved again. Saving a deleted session returns ErrSessionDeleted.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if s.IsDeleted() {
		return ErrSessionDeleted
	}

	raw, err := m.serializer.Serialize(s.data)
	if err != nil {
		return errors.Join(ErrSaveSession, err)
	}

	if err := m.store.Save(ctx, s.id, raw, m.ttl); err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	return nil
}

// Delete removes the stored copy and clears the in-memory data. The session
// is terminal afterwards; absence in the backend is not an error.
func (m *Manager) Delete(ctx context.Context, s *Session) error {
	if err := m.store.Delete(ctx, s.id); err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Join(ErrDeleteSession, err)
	}
	s.Clear()
	s.deleted = true
	return nil
}

// TTL returns the configured session duration.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
