package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/metrics"
	"github.com/andrescamacho/tradewinds-go/internal/application/mediator"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

func TestGlobalRecordersAreNoOpsWhenDisabled(t *testing.T) {
	metrics.Reset()

	assert.False(t, metrics.IsEnabled())
	assert.NotPanics(t, func() {
		metrics.RecordTransaction("s", "FUEL", "FUEL_COSTS", -25, 975)
		metrics.RecordTrade("s", "food", "buy", 5, 10)
		metrics.RecordTravel("s", "earth_station", "mars_colony", 1, 25)
		metrics.RecordPrice("earth_station", "food", 10)
		metrics.RecordFactoryBuilt("s", "electronics", true)
		metrics.RecordFactoryIncome("s", 18000)
	})
}

func TestEnable_RegistersCollectors(t *testing.T) {
	// Arrange
	metrics.Reset()
	t.Cleanup(metrics.Reset)

	// Act
	collectors, err := metrics.Enable()
	require.NoError(t, err)
	metrics.RecordTrade("s1", "food", "buy", 5, 10)
	metrics.RecordTrade("s1", "food", "buy", 3, 12)

	// Assert
	assert.True(t, metrics.IsEnabled())
	require.NotNil(t, collectors)
	families, err := metrics.GetRegistry().Gather()
	require.NoError(t, err)
	var trades float64
	for _, family := range families {
		if family.GetName() == "tradewinds_game_trades_total" {
			for _, m := range family.GetMetric() {
				trades += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, trades)
}

func TestPrometheusMiddleware_PassesThrough(t *testing.T) {
	collector := metrics.NewCommandMetricsCollector()
	mw := metrics.PrometheusMiddleware(collector)
	rejected := shared.NewGameError(shared.KindNoRoute, "no route")

	_, err := mw(context.Background(), struct{}{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, rejected
	})
	assert.True(t, errors.Is(err, shared.ErrNoRoute))

	resp, err := mw(context.Background(), struct{}{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}
