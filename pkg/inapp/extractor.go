package inapp

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger that adds the
// request's verdict as an "inapp" group.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		v, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("inapp",
			slog.Bool("in_app", v.InApp),
			slog.String("browser_label", v.Label),
			slog.String("reason", string(v.Reason)),
		), true
	}
}
