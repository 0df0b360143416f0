// Package healthcheck provides HTTP liveness and readiness probe handlers.
package healthcheck

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionkit/core/logger"
)

// Handler creates a health check handler that can serve as both a liveness
// and readiness probe depending on the provided dependency functions.
//
// When no dependency functions are provided, it acts as a liveness probe and
// returns "ALIVE" to indicate the service is running.
//
// When dependency functions are provided, it acts as a readiness probe and
// executes each function in sequence. If all succeed, it returns "READY".
// If any function fails, it logs the error and responds 503.
//
// Example:
//
//	// Liveness probe - no dependencies
//	mux.Handle("/health/live", healthcheck.Handler(log))
//
//	// Readiness probe - with session backend check
//	mux.Handle("/health/ready", healthcheck.Handler(log, redis.Healthcheck(client)))
func Handler(log *slog.Logger, fn ...func(context.Context) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Liveness probe: no dependency functions supplied.
		if len(fn) == 0 {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		// Readiness probe: verify all dependency functions succeed.
		for _, f := range fn {
			if err := f(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "Readiness check failed", logger.Error(err))
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("READY"))
	})
}
