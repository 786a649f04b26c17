package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/inappdetect/pkg/logger"
	"github.com/dmitrymomot/inappdetect/pkg/metrics"
)

// unmatchedRoute labels requests no route matched, keeping metric label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// observe logs every request and records it in m. The access log sees the
// outer request context only, so verdicts are logged by the handlers.
func observe(log *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			elapsed := time.Since(start)
			m.ObserveRequest(route, r.Method, status, elapsed)

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			log.LogAttrs(r.Context(), level, "http request",
				logger.HTTPRequest(r.Method, route, status),
				logger.Duration(elapsed),
				slog.Int("bytes", ww.BytesWritten()),
			)
		})
	}
}
