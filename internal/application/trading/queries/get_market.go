package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// GetMarketQuery asks for a location's prices; empty LocationID means the current location
type GetMarketQuery struct {
	SessionID  string
	LocationID string
}

// GetMarketResponse carries the market view
type GetMarketResponse struct {
	Market *game.MarketView
}

// GetMarketHandler handles the GetMarket query
type GetMarketHandler struct {
	runner *common.SessionRunner
}

// NewGetMarketHandler creates a new GetMarketHandler
func NewGetMarketHandler(runner *common.SessionRunner) *GetMarketHandler {
	return &GetMarketHandler{runner: runner}
}

// Handle executes the GetMarket query
func (h *GetMarketHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetMarketQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetMarketQuery")
	}

	var view *game.MarketView
	err := h.runner.Run(ctx, query.SessionID, func(s *game.Session) error {
		var err error
		view, err = s.Market(query.LocationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &GetMarketResponse{Market: view}, nil
}
