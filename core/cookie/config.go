package cookie

import (
	"net/http"
	"strings"
)

// Config provides environment-based configuration for the cookie manager.
// Secrets are comma-separated; the first signs, the rest verify.
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS,required"`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
}

// NewFromConfig creates a Manager from configuration.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, len(opts)+4)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	configOpts = append(configOpts, WithHTTPOnly(cfg.HttpOnly))
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	// Caller options override config values.
	configOpts = append(configOpts, opts...)

	return New(cfg.parseSecrets(), configOpts...)
}

// parseSecrets splits comma-separated secrets for key rotation support.
func (c Config) parseSecrets() []string {
	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}
