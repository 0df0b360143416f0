// Package cookie provides HTTP cookie operations with HMAC-SHA256 signing.
//
// The Manager wraps net/http cookie handling with tamper-evident values
// and secure defaults (Path=/, HttpOnly, SameSite=Lax). Signed cookies
// carry a base64url-encoded value and signature; verification tries every
// configured secret, so secrets can be rotated without invalidating
// outstanding cookies.
//
//	manager, err := cookie.New([]string{secret})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Issue a signed value
//	err = manager.SetSigned(w, "session", sessionID,
//		cookie.WithMaxAge(3600),
//	)
//
//	// Read it back; tampering yields ErrInvalidSignature
//	id, err := manager.GetSigned(r, "session")
//
// The manager only signs: values are readable by the client, just not
// forgeable. Session payloads stay server-side; only the opaque session id
// travels in the cookie.
package cookie
