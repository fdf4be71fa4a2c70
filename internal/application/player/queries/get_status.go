package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// GetStatusQuery asks for the captain's current status
type GetStatusQuery struct {
	SessionID string
}

// GetStatusResponse carries the status view
type GetStatusResponse struct {
	Status game.StatusView
}

// GetStatusHandler handles the GetStatus query
type GetStatusHandler struct {
	runner *common.SessionRunner
}

// NewGetStatusHandler creates a new GetStatusHandler
func NewGetStatusHandler(runner *common.SessionRunner) *GetStatusHandler {
	return &GetStatusHandler{runner: runner}
}

// Handle executes the GetStatus query
func (h *GetStatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetStatusQuery")
	}

	var status game.StatusView
	err := h.runner.Run(ctx, query.SessionID, func(s *game.Session) error {
		status = s.Status()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GetStatusResponse{Status: status}, nil
}
