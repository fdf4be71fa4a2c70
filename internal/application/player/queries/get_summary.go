package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// GetSummaryQuery asks for the end-of-game statistics
type GetSummaryQuery struct {
	SessionID string
}

// GetSummaryResponse carries the summary view
type GetSummaryResponse struct {
	Summary game.SummaryView
}

// GetSummaryHandler handles the GetSummary query
type GetSummaryHandler struct {
	runner *common.SessionRunner
}

// NewGetSummaryHandler creates a new GetSummaryHandler
func NewGetSummaryHandler(runner *common.SessionRunner) *GetSummaryHandler {
	return &GetSummaryHandler{runner: runner}
}

// Handle executes the GetSummary query
func (h *GetSummaryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetSummaryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetSummaryQuery")
	}

	var summary game.SummaryView
	err := h.runner.Run(ctx, query.SessionID, func(s *game.Session) error {
		summary = s.Summary()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GetSummaryResponse{Summary: summary}, nil
}
