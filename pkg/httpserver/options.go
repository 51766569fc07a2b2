package httpserver

import (
	"log/slog"
	"time"
)

type serverOptions struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

func defaultOptions() *serverOptions {
	return &serverOptions{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
	}
}

// Option configures the Server.
type Option func(*serverOptions)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(o *serverOptions) {
		if addr != "" {
			o.addr = addr
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(o *serverOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	return func(o *serverOptions) { o.readTimeout = d }
}

// WithWriteTimeout sets the maximum duration before timing out response writes.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *serverOptions) { o.writeTimeout = d }
}

// WithIdleTimeout sets the keep-alive idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(o *serverOptions) { o.idleTimeout = d }
}

// WithShutdownTimeout sets the time allowed for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *serverOptions) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}
