package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"
)

const (
	// MaxCookieSize is the maximum serialized size for a cookie (4KB).
	MaxCookieSize = 4096
	// minSecretLength keeps HMAC keys out of brute-force range.
	minSecretLength = 32
)

// Manager handles HTTP cookie operations with HMAC-SHA256 signing.
// Multiple secrets support key rotation: the first secret signs, every
// secret may verify.
type Manager struct {
	secrets  []string
	defaults Options
	maxSize  int
}

// New creates a cookie manager with the given secrets and default options.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}
	for _, secret := range secrets {
		if len(secret) < minSecretLength {
			return nil, ErrSecretTooShort
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	defaults = applyOptions(defaults, opts)

	return &Manager{
		secrets:  secrets,
		defaults: defaults,
		maxSize:  MaxCookieSize,
	}, nil
}

// Set stores a plain cookie value.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if !options.Expires.IsZero() {
		cookie.Expires = options.Expires
	}

	if header := cookie.String(); len(header) > m.maxSize {
		return ErrCookieTooLarge{Name: name, Size: len(header), Max: m.maxSize}
	}

	http.SetCookie(w, cookie)
	return nil
}

// Get retrieves a plain cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete removes a cookie by expiring it immediately.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}

// SetSigned stores a tamper-evident cookie value.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.sign(value), opts...)
}

// GetSigned retrieves and verifies a signed cookie value.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

// sign encodes value and appends an HMAC-SHA256 signature.
func (m *Manager) sign(value string) string {
	mac := hmac.New(sha256.New, []byte(m.secrets[0]))
	mac.Write([]byte(value))
	signature := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "." + signature
}

// verify checks the signature against every secret, supporting rotation.
func (m *Manager) verify(signed string) (string, error) {
	encoded, signature, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}

	valid := slices.ContainsFunc(m.secrets, func(secret string) bool {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
		return subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1
	})
	if !valid {
		return "", ErrInvalidSignature
	}

	return string(value), nil
}
