package sessiontransport

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/core/cookie"
	"github.com/dmitrymomot/sessionkit/core/session"
)

// DefaultCookieName is the session cookie name used when none is configured.
const DefaultCookieName = "session"

// Cookie binds the session manager to HTTP requests through a signed cookie
// carrying the session id. It owns the per-request glue: discovering the id
// before handler logic runs and re-issuing the cookie with a refreshed
// expiration afterwards.
type Cookie struct {
	manager *session.Manager
	cookies *cookie.Manager
	name    string
}

// NewCookie creates a cookie-based session transport. An empty name falls
// back to DefaultCookieName.
func NewCookie(manager *session.Manager, cookies *cookie.Manager, name string) *Cookie {
	if name == "" {
		name = DefaultCookieName
	}
	return &Cookie{
		manager: manager,
		cookies: cookies,
		name:    name,
	}
}

// Load resolves the request's session. A missing or tampered cookie mints a
// fresh session. A backend outage degrades the same way: the session comes
// back empty but usable, and the error is returned alongside so the caller
// can log the outage. The request itself never fails on session load.
func (c *Cookie) Load(r *http.Request) (*session.Session, error) {
	id, err := c.cookies.GetSigned(r, c.name)
	if err != nil {
		return c.manager.New(), nil
	}

	sess, err := c.manager.Get(r.Context(), id)
	if err != nil {
		return sess, err
	}
	return sess, nil
}

// Save persists the session and re-issues the cookie, sliding its expiration
// forward by the configured duration. Call before writing the response body;
// once headers are flushed the cookie cannot be set.
func (c *Cookie) Save(w http.ResponseWriter, r *http.Request, sess *session.Session) error {
	if err := c.manager.Save(r.Context(), sess); err != nil {
		return err
	}
	return c.SetCookie(w, sess)
}

// Persist writes the session to storage without touching the response.
// The request-completion hook uses this: by then the response may already be
// on the wire, and the cookie was refreshed before the handler ran.
func (c *Cookie) Persist(ctx context.Context, sess *session.Session) error {
	return c.manager.Save(ctx, sess)
}

// SetCookie writes the signed session cookie with expiration now+duration.
// Called on every request, not only new sessions: an active user's cookie
// never expires mid-use (sliding-window expiration).
func (c *Cookie) SetCookie(w http.ResponseWriter, sess *session.Session) error {
	ttl := c.manager.TTL()
	return c.cookies.SetSigned(w, c.name, sess.ID(),
		cookie.WithMaxAge(int(ttl.Seconds())),
		cookie.WithExpires(time.Now().Add(ttl)),
	)
}

// Destroy deletes the session from storage, clears its in-memory data and
// removes the cookie. The logout flow.
func (c *Cookie) Destroy(w http.ResponseWriter, r *http.Request, sess *session.Session) error {
	if err := c.manager.Delete(r.Context(), sess); err != nil {
		return err
	}
	c.cookies.Delete(w, c.name)
	return nil
}

// Manager exposes the underlying session manager.
func (c *Cookie) Manager() *session.Manager {
	return c.manager
}
