// Package api exposes the in-app browser classifier over HTTP.
//
// Routes:
//
//	GET  /v1/classify        classify ua/ref query parameters, or the caller itself
//	POST /v1/classify        classify a JSON body {user_agent, referrer, environment}
//	POST /v1/classify/batch  classify up to MaxBatchSize JSON items at once
//	GET  /v1/labels          list every browser label in resolution order
//	GET  /healthz            liveness
//	GET  /readyz             readiness, runs a classifier self-check
//	GET  /metrics            Prometheus exposition, when enabled
//
// Every JSON response uses the envelope {"data": ..., "error": {"code", "message"}}.
// The /v1 routes are rate limited per client address.
package api
