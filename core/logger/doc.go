// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and console or JSON output.
//
// # Ray IDs
//
// WithRayID attaches a random ray_id (a UUID) to a logger. The objects client
// derives one per operation so the start and outcome lines of a single upload,
// listing or delete can be matched in busy logs.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Client ready")
//
//	l := logger.WithRayID(log)
//	l.Debug("Uploading object", zap.String("key", key))
package logger
