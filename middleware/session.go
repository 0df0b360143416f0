package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/core/logger"
	"github.com/dmitrymomot/sessionkit/core/session"
	"github.com/dmitrymomot/sessionkit/pkg/clientip"
)

type sessionKey struct{}

// SessionConfig configures the session middleware.
type SessionConfig struct {
	// Transport handles cookie reading/writing and storage round trips.
	Transport SessionTransport

	// Skip defines a function to skip middleware execution for specific
	// requests, e.g. health checks.
	Skip func(r *http.Request) bool

	// Logger for structured logging (default: discards output).
	Logger *slog.Logger
}

// SessionTransport is the per-request session lifecycle contract implemented
// by sessiontransport.Cookie.
type SessionTransport interface {
	Load(r *http.Request) (*session.Session, error)
	SetCookie(w http.ResponseWriter, sess *session.Session) error
	Persist(ctx context.Context, sess *session.Session) error
}

// Session creates middleware that gives every request a loaded session.
//
// Before the handler runs it loads (or mints) the session, records the
// client IP on first touch, normalizes the bookkeeping keys, and refreshes
// the session cookie. After the handler returns it records the request URI
// and timestamp and saves the session.
//
// Failures never break the request: a load failure degrades to an empty
// session with a warning, a save failure is logged. If the process dies
// before the save runs, that request's mutations are lost; persistence is
// best-effort, not transactional.
func Session(transport SessionTransport) func(http.Handler) http.Handler {
	return SessionWithConfig(SessionConfig{Transport: transport})
}

// SessionWithConfig creates the session middleware with custom configuration.
func SessionWithConfig(cfg SessionConfig) func(http.Handler) http.Handler {
	if cfg.Transport == nil {
		panic("session middleware: transport is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := cfg.Transport.Load(r)
			if err != nil {
				// Storage unavailability reads as "no prior session".
				cfg.Logger.WarnContext(r.Context(), "session load degraded to empty session",
					logger.SessionID(sess.ID()), logger.Error(err))
			}

			if sess.IPAddress() == "" {
				sess.SetIPAddress(clientip.GetIP(r))
			}
			sess.Normalize(time.Now())

			if err := cfg.Transport.SetCookie(w, sess); err != nil {
				cfg.Logger.ErrorContext(r.Context(), "failed to set session cookie",
					logger.SessionID(sess.ID()), logger.Error(err))
			}

			r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess))
			next.ServeHTTP(w, r)

			// Runs even when the handler failed, as long as it returned.
			// A deleted session (logout) must not be resurrected by a save.
			if sess.IsDeleted() {
				return
			}

			sess.RecordRequest(r.URL.RequestURI(), time.Now())
			if err := cfg.Transport.Persist(r.Context(), sess); err != nil {
				// The response may already be on the wire; log, don't fail.
				cfg.Logger.ErrorContext(r.Context(), "session save failed",
					logger.SessionID(sess.ID()), logger.Error(err))
			}
		})
	}
}

// GetSession retrieves the request's session from its context.
// Returns the session and true if the middleware ran, nil and false otherwise.
func GetSession(ctx context.Context) (*session.Session, bool) {
	if ctx == nil {
		return nil, false
	}
	sess, ok := ctx.Value(sessionKey{}).(*session.Session)
	return sess, ok
}

// MustGetSession retrieves the request's session or panics if the middleware
// did not run. Use when session presence is guaranteed by routing.
func MustGetSession(ctx context.Context) *session.Session {
	sess, ok := GetSession(ctx)
	if !ok {
		panic("session not found in context")
	}
	return sess
}
