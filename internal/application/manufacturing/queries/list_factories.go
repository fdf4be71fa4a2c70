package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// ListFactoriesQuery lists owned factories and what suits the current location
type ListFactoriesQuery struct {
	SessionID string
}

// ListFactoriesResponse carries the factories view
type ListFactoriesResponse struct {
	Factories game.FactoriesView
}

// ListFactoriesHandler handles the ListFactories query
type ListFactoriesHandler struct {
	runner *common.SessionRunner
}

// NewListFactoriesHandler creates a new ListFactoriesHandler
func NewListFactoriesHandler(runner *common.SessionRunner) *ListFactoriesHandler {
	return &ListFactoriesHandler{runner: runner}
}

// Handle executes the ListFactories query
func (h *ListFactoriesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListFactoriesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListFactoriesQuery")
	}

	var view game.FactoriesView
	err := h.runner.Run(ctx, query.SessionID, func(s *game.Session) error {
		view = s.ListFactories()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ListFactoriesResponse{Factories: view}, nil
}
