package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// InApp records a classification outcome under the key "in_app".
func InApp(inApp bool) slog.Attr {
	return slog.Bool("in_app", inApp)
}

// BrowserLabel records a resolved browser label under "browser_label".
func BrowserLabel(label string) slog.Attr {
	return slog.String("browser_label", label)
}

// UserAgent records a User-Agent header, truncated to 256 bytes.
func UserAgent(ua string) slog.Attr {
	if len(ua) > 256 {
		ua = ua[:256]
	}
	return slog.String("user_agent", ua)
}

// HTTPRequest groups the request line and outcome under the key "http".
func HTTPRequest(method, route string, status int) slog.Attr {
	return slog.Group("http",
		slog.String("method", method),
		slog.String("route", route),
		slog.Int("status", status),
	)
}
