package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/inappdetect/pkg/logger"
)

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	startHooks      []func(*slog.Logger)
	stopHooks       []func(*slog.Logger)
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		readTimeout:     10 * time.Second,
		writeTimeout:    10 * time.Second,
		idleTimeout:     120 * time.Second,
		shutdownTimeout: 5 * time.Second,
		logger:          logger.Discard(),
	}
}

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	cfg *config

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Server{cfg: cfg}
}

// Addr returns the bound listener address, or "" before Run has bound it.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Run binds the listener, serves handler and blocks until ctx is cancelled,
// SIGINT or SIGTERM arrives, or Shutdown is called. Listen failures are
// wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	cfg := s.cfg

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	ln, err := net.Listen("tcp", cfg.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.readTimeout,
		WriteTimeout: cfg.writeTimeout,
		IdleTimeout:  cfg.idleTimeout,
		ErrorLog:     slog.NewLogLogger(cfg.logger.Handler(), slog.LevelWarn),
	}
	s.srv, s.ln = srv, ln
	s.mu.Unlock()

	cfg.logger.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))
	for _, h := range cfg.startHooks {
		h(cfg.logger)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var runErr error
	select {
	case <-ctx.Done():
		cfg.logger.Info("http server shutting down")
		shutdownErr := s.Shutdown(context.Background())
		runErr = <-errCh
		if shutdownErr != nil {
			cfg.logger.Error("http server shutdown failed", logger.Error(shutdownErr))
			return shutdownErr
		}
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		cfg.logger.Error("http server stopped", logger.Error(runErr))
		return errors.Join(ErrStart, runErr)
	}
	cfg.logger.Info("http server stopped")
	return nil
}

// Shutdown stops the server gracefully within the shutdown timeout. It is
// a no-op before Run and safe to call repeatedly.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	if srv == nil || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	for _, h := range s.cfg.stopHooks {
		h(s.cfg.logger)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
