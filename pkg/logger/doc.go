// Package logger builds *slog.Logger instances for the service and the CLI.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the resulting handler in LogHandlerDecorator, which runs
// ContextExtractor callbacks on every record. Request-scoped values such as
// the request id (requestid.LoggerExtractor) and the in-app verdict
// (inapp.LoggerExtractor) reach every log line of a request this way without
// being passed around explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        inapp.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "classified", logger.InApp(v.InApp), logger.BrowserLabel(v.Label))
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so callers can log an error unconditionally:
//
//	log.Info("shutdown finished", logger.Error(err))
package logger
