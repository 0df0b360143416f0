package sessionstore

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrymomot/sessionkit/core/logger"
	"github.com/dmitrymomot/sessionkit/core/session"
)

// defaultSubdir is created under the OS temp directory when no storage
// directory is configured.
const defaultSubdir = "sessions"

// File stores one session per file at {dir}/{id}. The directory is flat:
// ids are high-entropy, so collisions and hot directories are not a concern
// at the session counts this store targets.
type File struct {
	dir    string
	logger *slog.Logger
}

// FileOption configures the file store.
type FileOption func(*fileSettings)

type fileSettings struct {
	cleanup bool
	ttl     time.Duration
	logger  *slog.Logger
}

// WithCleanup enables the stale-session sweep at construction time.
// Files older than ttl are removed. Best-effort maintenance: a missed sweep
// only delays disk reclamation, it never serves stale data.
func WithCleanup(ttl time.Duration) FileOption {
	return func(s *fileSettings) {
		s.cleanup = true
		s.ttl = ttl
	}
}

// WithFileLogger sets the logger used for sweep diagnostics.
func WithFileLogger(logger *slog.Logger) FileOption {
	return func(s *fileSettings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFile creates a file-backed store rooted at dir.
//
// An empty dir defaults to a "sessions" directory under the OS temp
// directory, created on demand. An explicitly configured directory must
// already exist: pointing the store at a missing path is a deployment
// mistake and returns ErrInvalidDirectory.
func NewFile(dir string, opts ...FileOption) (*File, error) {
	settings := fileSettings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&settings)
	}

	if dir == "" {
		dir = filepath.Join(os.TempDir(), defaultSubdir)
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Join(ErrInvalidDirectory, err)
		}
	} else {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, errors.Join(ErrInvalidDirectory, err)
		}
	}

	store := &File{dir: dir, logger: settings.logger}
	if settings.cleanup {
		store.sweep(settings.ttl)
	}
	return store, nil
}

// Load implements session.Store.
func (f *File) Load(_ context.Context, id string) ([]byte, error) {
	path, err := f.filename(id)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

// Save implements session.Store. The file is overwritten whole; the TTL is
// enforced by the sweep and by the matching cookie expiration.
func (f *File) Save(_ context.Context, id string, data []byte, _ time.Duration) error {
	path, err := f.filename(id)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Delete implements session.Store. A missing file is not an error.
func (f *File) Delete(_ context.Context, id string) error {
	path, err := f.filename(id)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// filename maps an id to its storage path, rejecting ids that could escape
// the storage directory.
func (f *File) filename(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || id != filepath.Base(id) {
		return "", ErrInvalidSessionID
	}
	return filepath.Join(f.dir, id), nil
}

// sweep removes session files whose age has reached ttl. The boundary is
// inclusive: a file exactly ttl old is removed. Runs once per store
// construction, not per request.
func (f *File) sweep(ttl time.Duration) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		f.logger.Warn("session sweep: cannot read storage directory", slog.String("dir", f.dir), logger.Error(err))
		return
	}

	cutoff := time.Now().Add(-ttl)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(f.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			f.logger.Warn("session sweep: cannot remove stale file", slog.String("path", path), logger.Error(err))
			continue
		}
		f.logger.Debug("session sweep: removed stale file", slog.String("path", path))
	}
}
