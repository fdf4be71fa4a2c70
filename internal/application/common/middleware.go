package common

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/application/mediator"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// LoggingMiddleware puts logger on the context of every request and logs its outcome.
// Game rule rejections are expected and logged at Debug; anything else is an Error.
func LoggingMiddleware(logger *zap.Logger) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if _, ok := ctx.Value(loggerCtxKey{}).(*zap.Logger); !ok {
			ctx = WithLogger(ctx, logger)
		}
		name := mediator.RequestName(request)
		start := time.Now()

		response, err := next(ctx, request)

		fields := []zap.Field{
			zap.String("request", name),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case err == nil:
			logger.Debug("request handled", fields...)
		case shared.KindOf(err) != "":
			logger.Debug("request rejected", append(fields,
				zap.String("kind", shared.KindOf(err).String()),
				zap.String("reason", err.Error()))...)
		default:
			logger.Error("request failed", append(fields, zap.Error(err))...)
		}
		return response, err
	}
}
