package session

import "errors"

var (
	// ErrNotFound is returned by stores when no payload exists for an id.
	ErrNotFound = errors.New("session not found")

	// ErrKeyNotFound is returned when deleting a data key that was never set.
	ErrKeyNotFound = errors.New("session key not found")

	// ErrSessionDeleted is returned when saving a session after Delete.
	ErrSessionDeleted = errors.New("session has been deleted")

	// ErrLoadSession wraps store failures during load. Distinct from
	// ErrNotFound: this means the backend itself was unavailable.
	ErrLoadSession = errors.New("failed to load session")

	// ErrSaveSession wraps store failures during save. Save failures must
	// surface loudly; swallowing them silently loses user state.
	ErrSaveSession = errors.New("failed to save session")

	// ErrDeleteSession wraps store failures during delete.
	ErrDeleteSession = errors.New("failed to delete session")
)
