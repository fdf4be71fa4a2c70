package market

import "context"

// PriceHistoryRepository persists market regenerations for later analysis
type PriceHistoryRepository interface {
	// RecordPrices persists a batch of price observations
	RecordPrices(ctx context.Context, records []*PriceRecord) error

	// GetPriceHistory returns observations for a commodity in a session, newest first.
	// An empty locationID matches every location.
	GetPriceHistory(ctx context.Context, sessionID, locationID, commodityID string, limit int) ([]*PriceRecord, error)

	// GetPriceStats aggregates every observation of a commodity in a session.
	// Returns nil when nothing has been recorded.
	GetPriceStats(ctx context.Context, sessionID, commodityID string) (*PriceStats, error)
}
