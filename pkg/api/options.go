package api

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/inappdetect/pkg/metrics"
)

// Option configures the router built by New.
type Option func(*options)

type options struct {
	log      *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

// WithLogger sets the request and error logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetrics records verdicts and requests in m and serves g on /metrics
// when Config.MetricsEnabled is set. A nil g serves the default gatherer.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(o *options) {
		o.metrics = m
		o.gatherer = g
	}
}
