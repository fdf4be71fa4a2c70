package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
)

// GormMarketPriceHistoryRepository implements PriceHistoryRepository using GORM
type GormMarketPriceHistoryRepository struct {
	db *gorm.DB
}

// NewGormMarketPriceHistoryRepository creates a new GORM market price history repository
func NewGormMarketPriceHistoryRepository(db *gorm.DB) *GormMarketPriceHistoryRepository {
	return &GormMarketPriceHistoryRepository{db: db}
}

// RecordPrices persists a batch of price observations
func (r *GormMarketPriceHistoryRepository) RecordPrices(ctx context.Context, records []*market.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]MarketPriceHistoryModel, len(records))
	for i, record := range records {
		models[i] = MarketPriceHistoryModel{
			SessionID:   record.SessionID(),
			CommodityID: record.CommodityID(),
			LocationID:  record.LocationID(),
			Price:       record.Price(),
			Day:         record.Day(),
			RecordedAt:  record.RecordedAt(),
		}
	}

	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return fmt.Errorf("failed to record prices: %w", err)
	}
	return nil
}

// GetPriceHistory returns observations newest first.
// An empty locationID matches every location; limit <= 0 returns everything.
func (r *GormMarketPriceHistoryRepository) GetPriceHistory(
	ctx context.Context,
	sessionID string,
	locationID string,
	commodityID string,
	limit int,
) ([]*market.PriceRecord, error) {
	query := r.db.WithContext(ctx).
		Where("session_id = ? AND commodity_id = ?", sessionID, commodityID)

	if locationID != "" {
		query = query.Where("location_id = ?", locationID)
	}

	// id breaks ties between regenerations on the same day
	query = query.Order("day DESC").Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []MarketPriceHistoryModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get price history: %w", err)
	}

	records := make([]*market.PriceRecord, 0, len(models))
	for _, model := range models {
		record, err := market.NewPriceRecordWithID(
			model.ID,
			model.SessionID,
			model.LocationID,
			model.CommodityID,
			model.Price,
			model.Day,
			model.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to convert model to price record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// GetPriceStats aggregates every observation of a commodity in a session.
// Returns nil when nothing has been recorded.
func (r *GormMarketPriceHistoryRepository) GetPriceStats(ctx context.Context, sessionID, commodityID string) (*market.PriceStats, error) {
	type aggregate struct {
		Samples      int
		MinPrice     int
		MaxPrice     int
		AveragePrice float64
	}

	var agg aggregate
	err := r.db.WithContext(ctx).
		Model(&MarketPriceHistoryModel{}).
		Select("COUNT(*) AS samples, COALESCE(MIN(price), 0) AS min_price, COALESCE(MAX(price), 0) AS max_price, COALESCE(AVG(price), 0) AS average_price").
		Where("session_id = ? AND commodity_id = ?", sessionID, commodityID).
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate prices: %w", err)
	}
	if agg.Samples == 0 {
		return nil, nil
	}

	cheapest, err := r.locationAtPrice(ctx, sessionID, commodityID, agg.MinPrice)
	if err != nil {
		return nil, err
	}
	dearest, err := r.locationAtPrice(ctx, sessionID, commodityID, agg.MaxPrice)
	if err != nil {
		return nil, err
	}

	return &market.PriceStats{
		CommodityID:  commodityID,
		Samples:      agg.Samples,
		MinPrice:     agg.MinPrice,
		MaxPrice:     agg.MaxPrice,
		AveragePrice: agg.AveragePrice,
		CheapestAt:   cheapest,
		DearestAt:    dearest,
	}, nil
}

// locationAtPrice returns the location of the earliest observation at exactly price
func (r *GormMarketPriceHistoryRepository) locationAtPrice(ctx context.Context, sessionID, commodityID string, price int) (string, error) {
	var model MarketPriceHistoryModel
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND commodity_id = ? AND price = ?", sessionID, commodityID, price).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		return "", fmt.Errorf("failed to find location for price %d: %w", price, err)
	}
	return model.LocationID, nil
}
