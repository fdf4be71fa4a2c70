package common

import (
	"context"

	"go.uber.org/zap"
)

type loggerCtxKey struct{}

// WithLogger returns a context whose handlers log through logger
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// LoggerFromContext returns the logger installed by the application for this request.
// Handlers invoked outside the application (unit tests mostly) get a no-op logger.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	logger, _ := ctx.Value(loggerCtxKey{}).(*zap.Logger)
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
