package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// ExamineCommodityQuery asks for the details of one commodity at the current market
type ExamineCommodityQuery struct {
	SessionID string
	Commodity string
}

// ExamineCommodityResponse carries the commodity view
type ExamineCommodityResponse struct {
	Commodity *game.CommodityView
}

// ExamineCommodityHandler handles the ExamineCommodity query
type ExamineCommodityHandler struct {
	runner *common.SessionRunner
}

// NewExamineCommodityHandler creates a new ExamineCommodityHandler
func NewExamineCommodityHandler(runner *common.SessionRunner) *ExamineCommodityHandler {
	return &ExamineCommodityHandler{runner: runner}
}

// Handle executes the ExamineCommodity query
func (h *ExamineCommodityHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ExamineCommodityQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ExamineCommodityQuery")
	}

	var view *game.CommodityView
	err := h.runner.Run(ctx, query.SessionID, func(s *game.Session) error {
		var err error
		view, err = s.Examine(query.Commodity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ExamineCommodityResponse{Commodity: view}, nil
}
