package requestid

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the default request id header.
const Header = "X-Request-ID"

const maxIDLength = 128

var validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type contextKey struct{}

func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext returns the request id, or "" when none is set.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// LoggerExtractor returns a logger.ContextExtractor adding "request_id".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return slog.String("request_id", requestID), true
		}
		return slog.Attr{}, false
	}
}

// Option configures New.
type Option func(*options)

type options struct {
	header   string
	generate func() string
}

// WithHeader reads and writes the id under a different header, e.g. one set
// by a CDN in front of the service.
func WithHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.header = http.CanonicalHeaderKey(name)
		}
	}
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generate = fn
		}
	}
}

// New returns the middleware. A client-supplied id is reused only when it is
// short and made of [A-Za-z0-9_-]; anything else is replaced.
func New(opts ...Option) func(http.Handler) http.Handler {
	o := &options{header: Header, generate: uuid.NewString}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(o.header)
			if !isValidRequestID(requestID) {
				requestID = o.generate()
			}
			w.Header().Set(o.header, requestID)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
