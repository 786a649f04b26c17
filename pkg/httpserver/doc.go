// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server binds its listener in Run, logs through an injected slog.Logger and
// shuts down when the context is cancelled or SIGINT/SIGTERM arrives. Options
// (WithAddr, WithReadTimeout, WithShutdownTimeout, hooks) or NewFromConfig
// with the HTTP_* environment configuration set it up. HealthCheckHandler
// serves liveness and readiness probes.
//
// Run wraps listen errors with ErrStart and Shutdown wraps shutdown errors
// with ErrShutdown; use errors.Is to tell them apart.
package httpserver
