// Package httpserver wraps net/http serving with graceful shutdown,
// environment-driven configuration and lifecycle logging.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		// Startup or shutdown failure
//	}
//
// Run blocks until the context is canceled or SIGINT/SIGTERM arrives, then
// drains in-flight requests within the shutdown timeout.
package httpserver
