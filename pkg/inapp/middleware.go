package inapp

import "net/http"

// ProbeExtractor reads runtime probe values the client sent along with the
// request. It returns nil when the request carries none.
type ProbeExtractor func(r *http.Request) *Probe

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	probe ProbeExtractor
}

// WithProbeExtractor sets how probe values are read from the request.
// Without it only the User-Agent and Referer headers are used.
func WithProbeExtractor(fn ProbeExtractor) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.probe = fn
		}
	}
}

// Middleware classifies every request from its User-Agent and Referer
// headers and stores the verdict on the request context.
func Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var env *Probe
			if cfg.probe != nil {
				env = cfg.probe(r)
			}
			v := Classify(r.UserAgent(), r.Referer(), env)
			next.ServeHTTP(w, r.WithContext(WithVerdict(r.Context(), v)))
		})
	}
}
