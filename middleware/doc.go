// Package middleware provides net/http middleware for the session toolkit.
//
// The session middleware wires the full per-request lifecycle around any
// http.Handler: load (or mint) the session from its signed cookie, stamp
// first-touch bookkeeping, refresh the cookie, run the handler, then record
// the request and persist the session.
//
//	transport := sessiontransport.NewCookie(manager, cookieManager, "session")
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		sess := middleware.MustGetSession(r.Context())
//		sess.Set("locale", "en_US")
//	})
//
//	handler := middleware.Session(transport)(mux)
//	http.ListenAndServe(":8080", handler)
package middleware
