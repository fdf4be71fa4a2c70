package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// IncorporateCommand registers the captain's business. An empty name uses "<captain> Trading Corp".
type IncorporateCommand struct {
	SessionID string
	Name      string
}

// IncorporateResponse carries the registered business
type IncorporateResponse struct {
	Business game.BusinessView
	Credits  int
}

// IncorporateHandler handles the Incorporate command
type IncorporateHandler struct {
	runner *common.SessionRunner
}

// NewIncorporateHandler creates a new IncorporateHandler
func NewIncorporateHandler(runner *common.SessionRunner) *IncorporateHandler {
	return &IncorporateHandler{runner: runner}
}

// Handle executes the Incorporate command
func (h *IncorporateHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*IncorporateCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *IncorporateCommand")
	}

	var response IncorporateResponse
	err := h.runner.Run(ctx, cmd.SessionID, func(s *game.Session) error {
		if err := s.Incorporate(cmd.Name); err != nil {
			return err
		}
		response.Business = s.BusinessOverview()
		response.Credits = s.Player().Credits()

		common.LoggerFromContext(ctx).Info("business incorporated",
			zap.String("session", cmd.SessionID),
			zap.String("business", response.Business.Name),
			zap.Int("reputation", response.Business.Reputation),
			zap.Int("credits", response.Credits),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}
