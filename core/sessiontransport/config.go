package sessiontransport

import (
	"github.com/dmitrymomot/sessionkit/core/cookie"
	"github.com/dmitrymomot/sessionkit/core/session"
)

// CookieConfig provides environment-based configuration for the cookie
// transport.
type CookieConfig struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session"`
}

// NewCookieFromConfig creates a cookie transport from configuration.
// The session and cookie managers are provided by the caller.
func NewCookieFromConfig(cfg CookieConfig, manager *session.Manager, cookies *cookie.Manager) *Cookie {
	return NewCookie(manager, cookies, cfg.CookieName)
}
