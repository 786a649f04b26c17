package inapp

import "context"

type verdictContextKey struct{}

// WithVerdict stores a verdict on the context.
func WithVerdict(ctx context.Context, v Verdict) context.Context {
	return context.WithValue(ctx, verdictContextKey{}, v)
}

// FromContext returns the verdict stored by Middleware, if any.
func FromContext(ctx context.Context) (Verdict, bool) {
	if ctx == nil {
		return Verdict{}, false
	}
	v, ok := ctx.Value(verdictContextKey{}).(Verdict)
	return v, ok
}
