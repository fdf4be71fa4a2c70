package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/tradewinds-go/internal/application/mediator"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// PrometheusMiddleware times each request and counts it by outcome. A nil collector
// turns the middleware into a pass-through.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.Observe(mediator.RequestName(request), outcome(err), time.Since(start))
		return response, err
	}
}

// outcome separates game rule rejections from infrastructure failures
func outcome(err error) string {
	if err == nil {
		return outcomeHandled
	}
	if shared.KindOf(err) != "" {
		return outcomeRejected
	}
	return outcomeFailed
}
