package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// GetPriceHistoryQuery asks for the observed prices of a commodity in a session.
// An empty LocationID covers every location.
type GetPriceHistoryQuery struct {
	SessionID  string
	Commodity  string
	LocationID string
	Limit      int
}

// PricePoint is one observation
type PricePoint struct {
	LocationID string
	Price      int
	Day        int
}

// GetPriceHistoryResponse carries observations newest first plus aggregate stats
type GetPriceHistoryResponse struct {
	CommodityID string
	Points      []PricePoint
	Stats       *market.PriceStats // nil when nothing was observed
}

// GetPriceHistoryHandler handles the GetPriceHistory query
type GetPriceHistoryHandler struct {
	historyRepo market.PriceHistoryRepository
	catalog     *market.Catalog
}

// NewGetPriceHistoryHandler creates a new GetPriceHistoryHandler
func NewGetPriceHistoryHandler(historyRepo market.PriceHistoryRepository, catalog *market.Catalog) *GetPriceHistoryHandler {
	return &GetPriceHistoryHandler{
		historyRepo: historyRepo,
		catalog:     catalog,
	}
}

// Handle executes the GetPriceHistory query
func (h *GetPriceHistoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetPriceHistoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPriceHistoryQuery")
	}

	commodity, found := h.catalog.Resolve(query.Commodity)
	if !found {
		return nil, shared.NewGameError(shared.KindUnknownCommodity, "I don't recognize %q", query.Commodity)
	}

	records, err := h.historyRepo.GetPriceHistory(ctx, query.SessionID, query.LocationID, commodity.ID(), query.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}

	stats, err := h.historyRepo.GetPriceStats(ctx, query.SessionID, commodity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load price stats: %w", err)
	}

	points := make([]PricePoint, len(records))
	for i, r := range records {
		points[i] = PricePoint{
			LocationID: r.LocationID(),
			Price:      r.Price(),
			Day:        r.Day(),
		}
	}

	return &GetPriceHistoryResponse{
		CommodityID: commodity.ID(),
		Points:      points,
		Stats:       stats,
	}, nil
}
