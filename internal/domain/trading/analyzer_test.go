package trading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/tradewinds-go/internal/domain/trading"
)

func flatDistance(fromID, toID string) float64 {
	return 1
}

func TestNewOpportunity_DerivesProfit(t *testing.T) {
	// Arrange
	buy := trading.Quote{LocationID: "mars_colony", Price: 40, Day: 2}
	sell := trading.Quote{LocationID: "earth_station", Price: 70, Day: 4}

	// Act
	opp, err := trading.NewOpportunity("electronics", buy, sell, 2, 50, 5)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 30, opp.ProfitPerUnit())
	assert.Equal(t, 1500, opp.EstimatedProfit())
	assert.InDelta(t, 75.0, opp.ProfitMargin(), 0.001)
	assert.Equal(t, 3, opp.Age())
}

func TestNewOpportunity_RejectsUnprofitablePairs(t *testing.T) {
	_, err := trading.NewOpportunity("food", trading.Quote{LocationID: "a", Price: 10}, trading.Quote{LocationID: "b", Price: 10}, 1, 50, 0)
	assert.Error(t, err)

	_, err = trading.NewOpportunity("food", trading.Quote{LocationID: "a", Price: 10}, trading.Quote{LocationID: "a", Price: 20}, 1, 50, 0)
	assert.Error(t, err)

	_, err = trading.NewOpportunity("food", trading.Quote{LocationID: "a", Price: 10}, trading.Quote{LocationID: "b", Price: 20}, 1, 0, 0)
	assert.ErrorIs(t, err, trading.ErrInvalidCargoCapacity)
}

func TestAnalyzer_RanksByMargin(t *testing.T) {
	// Arrange
	analyzer := trading.NewAnalyzer()
	quotes := []trading.Quote{
		{LocationID: "a", Price: 10},
		{LocationID: "b", Price: 15},
		{LocationID: "c", Price: 30},
	}

	// Act
	opps, err := analyzer.Analyze("food", quotes, flatDistance, 50, 10, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, opps, 3)
	assert.Equal(t, "a", opps[0].BuyAt())
	assert.Equal(t, "c", opps[0].SellAt())
	for i := 1; i < len(opps); i++ {
		assert.GreaterOrEqual(t, opps[i-1].Score(), opps[i].Score())
	}
}

func TestAnalyzer_FiltersByMinimumMargin(t *testing.T) {
	analyzer := trading.NewAnalyzer()
	quotes := []trading.Quote{
		{LocationID: "a", Price: 100},
		{LocationID: "b", Price: 105},
	}

	opps, err := analyzer.Analyze("metals", quotes, flatDistance, 50, 10, 0)

	require.NoError(t, err)
	assert.Empty(t, opps)
}

func TestAnalyzer_RejectsBadParameters(t *testing.T) {
	analyzer := trading.NewAnalyzer()

	_, err := analyzer.Analyze("food", nil, flatDistance, 0, 10, 0)
	assert.ErrorIs(t, err, trading.ErrInvalidCargoCapacity)

	_, err = analyzer.Analyze("food", nil, flatDistance, 50, -1, 0)
	assert.ErrorIs(t, err, trading.ErrInvalidMarginThreshold)
}
