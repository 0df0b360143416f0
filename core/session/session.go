package session

import (
	"maps"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Well-known bookkeeping keys stored in the data tier. They travel with the
// rest of the session data so that external tools see them, but they have
// typed accessors to keep handler code honest.
const (
	keyIPAddress      = "ip_address"
	keyLastRequestAt  = "last_request_at"
	keyLastRequestURI = "last_request_uri"
	keyCreatedAt      = "created_at"
)

// Session is a durable per-client bag of key/value state identified by an
// opaque id carried in a signed cookie.
//
// The id and lifecycle flags are internal fields, structurally separate from
// the data map: they can never leak into serialized output, and no data key
// can clobber them. The data tier holds everything application code sets,
// observable in memory only until the manager persists it.
type Session struct {
	id      string
	data    map[string]any
	deleted bool
}

// newSession mints a session with a fresh high-entropy id.
func newSession() *Session {
	return &Session{
		id:   uuid.NewString(),
		data: map[string]any{},
	}
}

// resume constructs a session with a known id and previously stored data.
func resume(id string, data map[string]any) *Session {
	if data == nil {
		data = map[string]any{}
	}
	return &Session{id: id, data: data}
}

// ID returns the immutable session identifier. Changing session identity
// means constructing a new session, never mutating this one.
func (s *Session) ID() string {
	return s.id
}

// Get returns the value stored under key, or nil when the key was never set.
// Reading an unset key is not an error so handlers can probe speculatively.
func (s *Session) Get(key string) any {
	return s.data[key]
}

// GetString returns the value under key as a string, or "" when the key is
// absent or holds a different type.
func (s *Session) GetString(key string) string {
	v, _ := s.data[key].(string)
	return v
}

// GetTime returns the value under key as a time.Time. The second return
// value reports whether the key held a timestamp.
func (s *Session) GetTime(key string) (time.Time, bool) {
	v, ok := s.data[key].(time.Time)
	return v, ok
}

// Set stores value under key in the data tier.
func (s *Session) Set(key string, value any) {
	s.data[key] = value
}

// Delete removes key from the data tier. Unlike Get, deleting a key that was
// never set returns ErrKeyNotFound: deletion implies the key existed.
func (s *Session) Delete(key string) error {
	if _, ok := s.data[key]; !ok {
		return ErrKeyNotFound
	}
	delete(s.data, key)
	return nil
}

// Has reports whether key is present in the data tier.
func (s *Session) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Len returns the number of data keys.
func (s *Session) Len() int {
	return len(s.data)
}

// Keys returns the data keys in unspecified order.
func (s *Session) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Clear empties the data tier. The id and lifecycle state survive.
func (s *Session) Clear() {
	s.data = map[string]any{}
}

// Equal reports whether another session carries an identical data mapping.
// Identity is intentionally not part of the comparison.
func (s *Session) Equal(other *Session) bool {
	if other == nil {
		return false
	}
	// Values may hold nested maps, so structural comparison is required.
	return reflect.DeepEqual(s.data, other.data)
}

// Data returns a shallow copy of the data tier.
func (s *Session) Data() map[string]any {
	return maps.Clone(s.data)
}

// SetData replaces the data tier with a copy of values.
func (s *Session) SetData(values map[string]any) {
	s.data = maps.Clone(values)
	if s.data == nil {
		s.data = map[string]any{}
	}
}

// IsDeleted reports whether the session was deleted. A deleted session must
// not be saved again; the request integration layer checks this flag.
func (s *Session) IsDeleted() bool {
	return s.deleted
}

// IPAddress returns the client IP recorded on first touch, if any.
func (s *Session) IPAddress() string {
	return s.GetString(keyIPAddress)
}

// SetIPAddress records the client IP.
func (s *Session) SetIPAddress(ip string) {
	s.data[keyIPAddress] = ip
}

// LastRequestAt returns the timestamp of the last completed request.
func (s *Session) LastRequestAt() (time.Time, bool) {
	return s.GetTime(keyLastRequestAt)
}

// LastRequestURI returns the URI of the last completed request.
func (s *Session) LastRequestURI() string {
	return s.GetString(keyLastRequestURI)
}

// RecordRequest updates the last-request bookkeeping. The request
// integration calls this once per completed request, just before saving.
func (s *Session) RecordRequest(uri string, at time.Time) {
	s.data[keyLastRequestAt] = at
	s.data[keyLastRequestURI] = uri
}

// CreatedAt returns the session creation timestamp, if recorded.
func (s *Session) CreatedAt() (time.Time, bool) {
	return s.GetTime(keyCreatedAt)
}

// Normalize makes sure the bookkeeping keys exist, as nil when unused, so
// templates and API responses can rely on their presence before first use.
// It also stamps created_at on sessions that have never seen it.
func (s *Session) Normalize(now time.Time) {
	if _, ok := s.data[keyCreatedAt]; !ok {
		s.data[keyCreatedAt] = now
	}
	if _, ok := s.data[keyLastRequestAt]; !ok {
		s.data[keyLastRequestAt] = nil
	}
	if _, ok := s.data[keyLastRequestURI]; !ok {
		s.data[keyLastRequestURI] = nil
	}
}
