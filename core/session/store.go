package session

import (
	"context"
	"time"
)

// Store is the byte-level persistence interface behind a session manager.
// Implementations handle one physical medium (filesystem, key-value store,
// process memory) and never see session structure: serialization is the
// manager's concern.
type Store interface {
	// Load returns the stored payload for id.
	// Returns ErrNotFound when nothing is stored, which is the normal
	// first-visit case, not a failure.
	Load(ctx context.Context, id string) ([]byte, error)

	// Save writes the payload for id, overwriting any previous value, and
	// refreshes the server-side retention window to ttl in the same logical
	// operation.
	Save(ctx context.Context, id string, data []byte, ttl time.Duration) error

	// Delete removes the stored payload for id. Deleting an id that was
	// never stored is not an error.
	Delete(ctx context.Context, id string) error
}
