package persistence

import (
	"time"
)

// TransactionModel represents the transactions table
type TransactionModel struct {
	ID                string    `gorm:"column:id;primaryKey;size:36"`
	SessionID         string    `gorm:"column:session_id;size:36;not null;index:idx_transactions_session_day,priority:1"`
	Timestamp         time.Time `gorm:"column:timestamp;not null;index"`
	Day               int       `gorm:"column:day;not null;index:idx_transactions_session_day,priority:2"`
	TransactionType   string    `gorm:"column:transaction_type;size:50;not null"`
	Category          string    `gorm:"column:category;size:50;not null;index"`
	Amount            int       `gorm:"column:amount;not null"`
	BalanceBefore     int       `gorm:"column:balance_before;not null"`
	BalanceAfter      int       `gorm:"column:balance_after;not null"`
	Description       string    `gorm:"column:description;type:text"`
	Metadata          string    `gorm:"column:metadata;type:text"` // JSON stored as string
	RelatedEntityType string    `gorm:"column:related_entity_type;size:50"`
	RelatedEntityID   string    `gorm:"column:related_entity_id;size:100"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// MarketPriceHistoryModel represents the market_price_history table.
// One row per commodity each time a location's market is regenerated.
type MarketPriceHistoryModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID   string    `gorm:"column:session_id;size:36;not null;index:idx_price_history_lookup,priority:1"`
	CommodityID string    `gorm:"column:commodity_id;size:50;not null;index:idx_price_history_lookup,priority:2"`
	LocationID  string    `gorm:"column:location_id;size:50;not null;index:idx_price_history_lookup,priority:3"`
	Price       int       `gorm:"column:price;not null"`
	Day         int       `gorm:"column:day;not null"`
	RecordedAt  time.Time `gorm:"column:recorded_at;not null"`
}

func (MarketPriceHistoryModel) TableName() string {
	return "market_price_history"
}
