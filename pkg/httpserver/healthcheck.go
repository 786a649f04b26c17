package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/inappdetect/pkg/logger"
)

// Check reports whether a dependency of the service is usable.
type Check func(ctx context.Context) error

// HealthCheckHandler returns a handler usable as liveness and readiness
// probe.
//
//   - Liveness: without checks it always answers 200 "ALIVE".
//   - Readiness: with checks it runs each against the request context and
//     answers 200 "READY", or 503 "NOT_READY" on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
