// Package logging provides the single zap logger this module's ambient
// code pulls out of a context.Context, following the same
// FromContext(ctx) accessor pattern used throughout internal/server,
// internal/setup, and internal/database.
package logging

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// defaultLogger is returned by FromContext when no logger has been
// attached to the context.
var defaultLogger = func() *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}()

// WithLogger returns a context carrying logger, retrievable later via
// FromContext.
func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, or a default
// production logger if none was attached.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
		return logger
	}
	return defaultLogger
}

// NewLogger builds the module's standard logger: JSON in production,
// console-formatted and more verbose in development.
func NewLogger(development bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
