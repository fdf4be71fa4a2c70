package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/metrics"
	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// RecordMarketPricesCommand stores a regenerated market snapshot in the price history
type RecordMarketPricesCommand struct {
	SessionID string
	Snapshot  *market.Snapshot
	Day       int
}

// RecordMarketPricesResponse reports how many prices were stored
type RecordMarketPricesResponse struct {
	Recorded int
}

// RecordMarketPricesHandler handles the RecordMarketPrices command
type RecordMarketPricesHandler struct {
	historyRepo market.PriceHistoryRepository
	clock       shared.Clock
}

// NewRecordMarketPricesHandler creates a new RecordMarketPricesHandler
func NewRecordMarketPricesHandler(historyRepo market.PriceHistoryRepository, clock shared.Clock) *RecordMarketPricesHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &RecordMarketPricesHandler{
		historyRepo: historyRepo,
		clock:       clock,
	}
}

// Handle executes the RecordMarketPrices command
func (h *RecordMarketPricesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RecordMarketPricesCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecordMarketPricesCommand")
	}
	if cmd.Snapshot == nil {
		return nil, fmt.Errorf("snapshot is required")
	}

	records, err := market.RecordsFromSnapshot(cmd.SessionID, cmd.Snapshot, cmd.Day, h.clock.Now().Truncate(time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("failed to build price records: %w", err)
	}

	if err := h.historyRepo.RecordPrices(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to record prices: %w", err)
	}

	for _, record := range records {
		metrics.RecordPrice(record.LocationID(), record.CommodityID(), record.Price())
	}

	return &RecordMarketPricesResponse{Recorded: len(records)}, nil
}
