// Package applog wraps zap for mdiff's CLI commands: a production JSON
// logger by default, switched to debug level under --verbose, with a
// correlation ID attached per invocation.
package applog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger configured for CLI use: production (JSON,
// info-and-above) unless verbose requests debug level.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// WithRequestID returns a child logger carrying a correlation field for a
// single command invocation.
func WithRequestID(logger *zap.Logger, requestID string) *zap.Logger {
	return logger.With(zap.String("request_id", requestID))
}
