package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	srv             *http.Server
	log             *slog.Logger
	shutdownTimeout time.Duration
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = newNoopLogger()
	}

	return &Server{
		srv: &http.Server{
			Addr:         o.addr,
			ReadTimeout:  o.readTimeout,
			WriteTimeout: o.writeTimeout,
			IdleTimeout:  o.idleTimeout,
		},
		log:             o.logger,
		shutdownTimeout: o.shutdownTimeout,
	}
}

// Run serves handler until ctx is canceled, a termination signal arrives, or
// the listener fails. It blocks for the duration of the server's life and
// returns nil after a clean shutdown.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	s.srv.Handler = handler

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.ListenAndServe() }()

	s.log.InfoContext(ctx, "HTTP server listening", slog.String("addr", s.srv.Addr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-ctx.Done():
		return s.shutdown(errCh)
	case sig := <-stop:
		s.log.Info("shutdown signal received", slog.String("signal", sig.String()))
		return s.shutdown(errCh)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	}
}

// shutdown drains in-flight requests within the shutdown timeout and
// collects the listener's exit error.
func (s *Server) shutdown(errCh <-chan error) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.Join(ErrShutdown, err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}
