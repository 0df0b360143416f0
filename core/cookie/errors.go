package cookie

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSecret indicates no secret was provided for cookie signing.
	ErrNoSecret = errors.New("no secret provided for cookie manager")

	// ErrSecretTooShort indicates a signing secret below the minimum length.
	ErrSecretTooShort = errors.New("secret must be at least 32 characters long")

	// ErrCookieNotFound indicates the requested cookie doesn't exist in the request.
	ErrCookieNotFound = errors.New("cookie not found in request")

	// ErrInvalidSignature indicates signature verification failed,
	// suggesting tampering or a retired secret.
	ErrInvalidSignature = errors.New("cookie signature verification failed")

	// ErrInvalidFormat indicates the signed cookie value has an unexpected shape.
	ErrInvalidFormat = errors.New("invalid cookie format")
)

// ErrCookieTooLarge indicates the cookie exceeds the maximum allowed size.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
