package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/inappdetect/pkg/inapp"
)

const namespace = "inappdetect"

// Metrics holds all Prometheus collectors of the service.
type Metrics struct {
	// Counters
	Verdicts     *prometheus.CounterVec
	HTTPRequests *prometheus.CounterVec

	// Histograms
	HTTPDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. A nil reg uses
// the Prometheus default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Verdicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verdicts_total",
				Help:      "Total classification verdicts by outcome and browser label",
			},
			[]string{"in_app", "label"},
		),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),

		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration",
				Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"route", "method"},
		),
	}

	reg.MustRegister(m.Verdicts, m.HTTPRequests, m.HTTPDuration)

	return m
}

// ObserveVerdict counts one classification result. A nil m is a no-op.
func (m *Metrics) ObserveVerdict(v inapp.Verdict) {
	if m == nil {
		return
	}
	m.Verdicts.WithLabelValues(strconv.FormatBool(v.InApp), v.Label).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// Handler exposes the metrics gathered by g. A nil g uses the Prometheus
// default gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
