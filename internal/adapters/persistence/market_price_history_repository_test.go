package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/persistence"
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
)

func priceRecord(t *testing.T, sessionID, locationID, commodityID string, price, day int) *market.PriceRecord {
	t.Helper()
	record, err := market.NewPriceRecord(sessionID, locationID, commodityID, price, day, time.Now().UTC())
	require.NoError(t, err)
	return record
}

func TestGormMarketPriceHistoryRepository_HistoryNewestFirst(t *testing.T) {
	// Arrange
	repo := persistence.NewGormMarketPriceHistoryRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.RecordPrices(ctx, []*market.PriceRecord{
		priceRecord(t, "s1", "earth_station", "food", 10, 0),
		priceRecord(t, "s1", "mars_colony", "food", 14, 2),
		priceRecord(t, "s1", "earth_station", "food", 9, 5),
		priceRecord(t, "s1", "earth_station", "water", 5, 5),
		priceRecord(t, "s2", "earth_station", "food", 99, 9),
	}))

	// Act
	all, err := repo.GetPriceHistory(ctx, "s1", "", "food", 0)
	require.NoError(t, err)
	earth, err := repo.GetPriceHistory(ctx, "s1", "earth_station", "food", 1)
	require.NoError(t, err)

	// Assert
	require.Len(t, all, 3)
	assert.Equal(t, []int{5, 2, 0}, []int{all[0].Day(), all[1].Day(), all[2].Day()})
	require.Len(t, earth, 1)
	assert.Equal(t, 9, earth[0].Price())
	assert.NotZero(t, earth[0].ID())
}

func TestGormMarketPriceHistoryRepository_Stats(t *testing.T) {
	repo := persistence.NewGormMarketPriceHistoryRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.RecordPrices(ctx, []*market.PriceRecord{
		priceRecord(t, "s1", "earth_station", "metals", 20, 0),
		priceRecord(t, "s1", "mars_colony", "metals", 40, 2),
		priceRecord(t, "s1", "luna_base", "metals", 30, 3),
	}))

	stats, err := repo.GetPriceStats(ctx, "s1", "metals")

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.Samples)
	assert.Equal(t, 20, stats.MinPrice)
	assert.Equal(t, 40, stats.MaxPrice)
	assert.InDelta(t, 30.0, stats.AveragePrice, 0.001)
	assert.Equal(t, "earth_station", stats.CheapestAt)
	assert.Equal(t, "mars_colony", stats.DearestAt)
}

func TestGormMarketPriceHistoryRepository_StatsEmpty(t *testing.T) {
	repo := persistence.NewGormMarketPriceHistoryRepository(newTestDB(t))

	stats, err := repo.GetPriceStats(context.Background(), "s1", "weapons")

	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestGormMarketPriceHistoryRepository_EmptyBatch(t *testing.T) {
	repo := persistence.NewGormMarketPriceHistoryRepository(newTestDB(t))

	assert.NoError(t, repo.RecordPrices(context.Background(), nil))
}
