// Package sessiontransport binds server-side sessions to HTTP requests
// through a signed cookie.
//
// The cookie carries only the opaque session id; all session data stays in
// the configured storage backend. The transport covers the per-request
// lifecycle:
//
//   - Load reads the signed cookie and resumes (or mints) the session
//   - SetCookie re-issues the cookie with expiration now+duration, every
//     request, so an active session's expiry slides forward
//   - Save persists the session and refreshes the cookie in one step
//   - Destroy deletes the session and removes the cookie (logout)
//
// # Degradation
//
// Load never fails a request. A missing or tampered cookie yields a fresh
// anonymous session; a storage outage yields an empty session plus the
// error for logging, trading consistency for availability. Session data is
// supplementary state, not the system of record.
//
//	transport := sessiontransport.NewCookie(manager, cookieManager, "session")
//
//	sess, err := transport.Load(r)
//	if err != nil {
//		slog.Warn("session load degraded", "error", err)
//	}
//	sess.Set("locale", "en_US")
//	if err := transport.Save(w, r, sess); err != nil {
//		slog.Error("session save failed", "error", err)
//	}
//
// Most applications do not call the transport directly; the middleware
// package wires these steps around every handler.
package sessiontransport
