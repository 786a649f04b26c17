// Package requestid tags every request with a correlation id that is echoed
// in the response header, stored on the context and added to log records.
//
// Middleware keeps a well-formed incoming X-Request-ID and otherwise
// generates a UUID. New accepts options for a different header name or
// generator:
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// FromContext returns the id for the current request.
package requestid
