package cookie

import (
	"net/http"
	"time"
)

// Options configures cookie attributes for HTTP cookie operations.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Expires  time.Time
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// Option is a functional option for configuring cookie options.
type Option func(*Options)

// WithPath sets the cookie path attribute.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithMaxAge sets the cookie max-age in seconds.
// Negative values delete the cookie immediately.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

// WithExpires sets the explicit expiration timestamp.
func WithExpires(at time.Time) Option {
	return func(o *Options) {
		o.Expires = at
	}
}

// WithSecure ensures the cookie is only sent over HTTPS.
func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// WithHTTPOnly prevents JavaScript access to the cookie.
func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute for CSRF protection.
func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// applyOptions copies base options and applies modifications, so shared
// defaults are never mutated.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
