package cli

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inappdetect/pkg/api"
	"github.com/dmitrymomot/inappdetect/pkg/config"
	"github.com/dmitrymomot/inappdetect/pkg/httpserver"
	"github.com/dmitrymomot/inappdetect/pkg/inapp"
	"github.com/dmitrymomot/inappdetect/pkg/logger"
	"github.com/dmitrymomot/inappdetect/pkg/metrics"
	"github.com/dmitrymomot/inappdetect/pkg/requestid"
)

// ServiceConfig is the environment configuration of the serve command.
type ServiceConfig struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	AppName   string `env:"APP_NAME" envDefault:"inappdetect"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP httpserver.Config
	API  api.Config
}

func newServeCmd() *cobra.Command {
	var (
		envFile string
		addr    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the classification HTTP API",
		Long:  "Serves the classifier over HTTP until interrupted. Settings come from\nthe environment (APP_ENV, LOG_LEVEL, HTTP_ADDR, RATE_LIMIT_*, METRICS_ENABLED).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if envFile != "" {
				if err := config.LoadEnv(envFile); err != nil {
					return err
				}
			}
			var cfg ServiceConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			reg := prometheus.NewRegistry()
			var m *metrics.Metrics
			if cfg.API.MetricsEnabled {
				reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
				m = metrics.New(reg)
			}

			handler := api.New(cfg.API, api.WithLogger(log), api.WithMetrics(m, reg))
			srv := httpserver.NewFromConfig(cfg.HTTP,
				httpserver.WithLogger(log),
				httpserver.WithStopHook(func(l *slog.Logger) { l.Info("classifier service stopped") }),
			)
			return srv.Run(cmd.Context(), handler)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "Load environment variables from this file first")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides HTTP_ADDR")
	return cmd
}

func newLogger(cfg ServiceConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), inapp.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	switch logger.Format(cfg.LogFormat) {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	default:
		return nil, fmt.Errorf("unknown LOG_FORMAT %q, expected json or text", cfg.LogFormat)
	}
	return logger.New(opts...), nil
}
