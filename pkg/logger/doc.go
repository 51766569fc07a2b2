// Package logger builds configured log/slog loggers and provides attribute
// helpers for the fields this service logs consistently (tenant id,
// operation, configuration version).
//
// Production defaults are JSON at info level; development typically switches
// to text via LOG_FORMAT=text. The helpers return empty attributes for zero
// values so call sites never have to guard:
//
//	log.Info("features evaluated",
//		logger.TenantID(id),
//		logger.ConfigVersion(version),
//	)
package logger
