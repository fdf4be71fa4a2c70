package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// GetBusinessQuery asks for the business overview: standing, licenses and loans
type GetBusinessQuery struct {
	SessionID string
}

// GetBusinessResponse carries the business view
type GetBusinessResponse struct {
	Business game.BusinessView
	Credits  int
}

// GetBusinessHandler handles the GetBusiness query
type GetBusinessHandler struct {
	runner *common.SessionRunner
}

// NewGetBusinessHandler creates a new GetBusinessHandler
func NewGetBusinessHandler(runner *common.SessionRunner) *GetBusinessHandler {
	return &GetBusinessHandler{runner: runner}
}

// Handle executes the GetBusiness query
func (h *GetBusinessHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetBusinessQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetBusinessQuery")
	}

	var response GetBusinessResponse
	err := h.runner.Run(ctx, query.SessionID, func(s *game.Session) error {
		response.Business = s.BusinessOverview()
		response.Credits = s.Player().Credits()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}
