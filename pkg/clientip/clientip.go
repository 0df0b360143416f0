// Package clientip extracts the real client IP address from HTTP requests.
//
// Proxy headers are consulted in priority order before falling back to the
// connection's remote address:
//
//  1. CF-Connecting-IP (Cloudflare)
//  2. X-Forwarded-For (leftmost entry, the original client)
//  3. X-Real-IP (nginx and other reverse proxies)
//  4. RemoteAddr (direct connection)
//
// Every candidate is validated and normalized; invalid entries are skipped
// so a malformed header cannot poison audit data.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the client IP for the request, or "" when no candidate is a
// valid address.
func GetIP(r *http.Request) string {
	if ip := parse(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	// X-Forwarded-For may hold a chain "client, proxy1, proxy2"; the
	// leftmost entry is the original client.
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := parse(first); ip != "" {
			return ip
		}
	}

	if ip := parse(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, e.g. in tests.
		host = r.RemoteAddr
	}
	return parse(host)
}

// parse validates and normalizes one IP candidate.
func parse(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
