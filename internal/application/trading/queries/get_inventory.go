package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// GetInventoryQuery asks for the cargo manifest valued at the current market
type GetInventoryQuery struct {
	SessionID string
}

// GetInventoryResponse carries the inventory view
type GetInventoryResponse struct {
	Inventory game.InventoryView
}

// GetInventoryHandler handles the GetInventory query
type GetInventoryHandler struct {
	runner *common.SessionRunner
}

// NewGetInventoryHandler creates a new GetInventoryHandler
func NewGetInventoryHandler(runner *common.SessionRunner) *GetInventoryHandler {
	return &GetInventoryHandler{runner: runner}
}

// Handle executes the GetInventory query
func (h *GetInventoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetInventoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetInventoryQuery")
	}

	var view game.InventoryView
	err := h.runner.Run(ctx, query.SessionID, func(s *game.Session) error {
		view = s.Inventory()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GetInventoryResponse{Inventory: view}, nil
}
