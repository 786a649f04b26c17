// Package metrics holds the Prometheus instrumentation of the classifier
// service.
//
// New registers verdict and HTTP request collectors on a registerer. A nil
// *Metrics is valid and records nothing, so callers never need to branch on
// whether metrics are enabled:
//
//	m := metrics.New(reg)
//	m.ObserveVerdict(inapp.Classify(ua, ref, nil))
//	mux.Handle("/metrics", metrics.Handler(reg))
package metrics
