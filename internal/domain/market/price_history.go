package market

import (
	"time"
)

// PriceRecord is an immutable point-in-time price observation for one commodity at one location.
// A record is written for every commodity each time a market is regenerated.
type PriceRecord struct {
	id          int
	sessionID   string
	locationID  string
	commodityID string
	price       int
	day         int
	recordedAt  time.Time
}

// NewPriceRecord creates a price record with validation
func NewPriceRecord(sessionID, locationID, commodityID string, price, day int, recordedAt time.Time) (*PriceRecord, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	if locationID == "" {
		return nil, ErrInvalidLocationID
	}
	if commodityID == "" {
		return nil, ErrInvalidCommodityID
	}
	if price < 1 {
		return nil, ErrInvalidPrice
	}
	return &PriceRecord{
		sessionID:   sessionID,
		locationID:  locationID,
		commodityID: commodityID,
		price:       price,
		day:         day,
		recordedAt:  recordedAt,
	}, nil
}

// NewPriceRecordWithID reconstitutes a stored record
func NewPriceRecordWithID(id int, sessionID, locationID, commodityID string, price, day int, recordedAt time.Time) (*PriceRecord, error) {
	record, err := NewPriceRecord(sessionID, locationID, commodityID, price, day, recordedAt)
	if err != nil {
		return nil, err
	}
	record.id = id
	return record, nil
}

// RecordsFromSnapshot turns a snapshot into one record per commodity, sorted by commodity id
func RecordsFromSnapshot(sessionID string, snapshot *Snapshot, day int, recordedAt time.Time) ([]*PriceRecord, error) {
	records := make([]*PriceRecord, 0, len(snapshot.prices))
	for _, commodityID := range snapshot.CommodityIDs() {
		record, err := NewPriceRecord(sessionID, snapshot.locationID, commodityID, snapshot.prices[commodityID], day, recordedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Getters (immutable entity - no setters)

func (r *PriceRecord) ID() int               { return r.id }
func (r *PriceRecord) SessionID() string     { return r.sessionID }
func (r *PriceRecord) LocationID() string    { return r.locationID }
func (r *PriceRecord) CommodityID() string   { return r.commodityID }
func (r *PriceRecord) Price() int            { return r.price }
func (r *PriceRecord) Day() int              { return r.day }
func (r *PriceRecord) RecordedAt() time.Time { return r.recordedAt }

// PriceStats summarizes the observed prices of one commodity in a session
type PriceStats struct {
	CommodityID  string
	Samples      int
	MinPrice     int
	MaxPrice     int
	AveragePrice float64
	CheapestAt   string
	DearestAt    string
}
