package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/inappdetect/pkg/httpserver"
	"github.com/dmitrymomot/inappdetect/pkg/inapp"
	"github.com/dmitrymomot/inappdetect/pkg/logger"
	"github.com/dmitrymomot/inappdetect/pkg/metrics"
	"github.com/dmitrymomot/inappdetect/pkg/requestid"
)

// New builds the service router.
func New(cfg Config, opts ...Option) http.Handler {
	o := &options{log: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	h := &handlers{log: o.log, metrics: o.metrics, parsePlatform: platformParser(cfg.PlatformCacheSize)}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(observe(o.log, o.metrics))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(o.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(o.log, classifierCheck))
	if cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(o.gatherer))
	}

	r.Route("/v1", func(r chi.Router) {
		if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow > 0 {
			r.Use(rateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.TrustProxyHeaders))
		}
		r.With(inapp.Middleware(inapp.WithProbeExtractor(probeFromQuery))).
			Get("/classify", h.classifyGet)
		r.Post("/classify", h.classifyPost)
		r.Post("/classify/batch", h.classifyBatch)
		r.Get("/labels", h.labels)
	})

	return r
}

func probeFromQuery(r *http.Request) *inapp.Probe {
	return inapp.ProbeFromQuery(r.URL.Query())
}
