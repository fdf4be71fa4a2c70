package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/metrics"
	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// TravelCommand flies the captain to a destination given by id, name or system
type TravelCommand struct {
	SessionID   string
	Destination string
}

// TravelResponse describes the completed trip and where the captain now stands
type TravelResponse struct {
	Report *game.TravelReport
	Status game.StatusView
}

// TravelHandler handles the Travel command
type TravelHandler struct {
	runner *common.SessionRunner
}

// NewTravelHandler creates a new TravelHandler
func NewTravelHandler(runner *common.SessionRunner) *TravelHandler {
	return &TravelHandler{runner: runner}
}

// Handle executes the Travel command
func (h *TravelHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*TravelCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *TravelCommand")
	}

	var response TravelResponse
	err := h.runner.Run(ctx, cmd.SessionID, func(s *game.Session) error {
		report, err := s.Travel(cmd.Destination)
		if err != nil {
			return err
		}
		response.Report = report
		response.Status = s.Status()

		common.LoggerFromContext(ctx).Info("travel completed",
			zap.String("session", cmd.SessionID),
			zap.String("from", report.From),
			zap.String("to", report.To),
			zap.Int("days", report.Days),
			zap.Int("fuel_cost", report.FuelCost),
			zap.Int("income", report.Income),
			zap.Int("credits", response.Status.Credits),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTravel(cmd.SessionID, response.Report.From, response.Report.To, response.Report.Days, response.Report.FuelCost)
	if response.Report.Income > 0 {
		metrics.RecordFactoryIncome(cmd.SessionID, response.Report.Income)
	}
	return &response, nil
}
