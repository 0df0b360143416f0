// Package logger provides slog attribute helpers shared across the toolkit.
//
// The helpers use the empty Attr pattern for nil safety: logger.Error(nil)
// yields an empty attribute that slog drops, so call sites never need an
// explicit nil check.
package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// SessionID creates an attribute for a session identifier.
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

// Component tags log records with the emitting subsystem.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
