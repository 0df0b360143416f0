package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/sessionkit/core/session"
)

// Memory is an in-process store: a map guarded by a mutex with per-entry
// expiry. Suitable for tests and single-process deployments; sessions do
// not survive a restart.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: map[string]memoryEntry{}}
}

// Load implements session.Store. Expired entries read as misses and are
// reaped lazily.
func (m *Memory) Load(_ context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.entries, id)
		return nil, session.ErrNotFound
	}
	return entry.data, nil
}

// Save implements session.Store.
func (m *Memory) Save(_ context.Context, id string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[id] = memoryEntry{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete implements session.Store.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}

// Len returns the number of live entries, counting not-yet-reaped expired
// ones. Intended for tests and diagnostics.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
