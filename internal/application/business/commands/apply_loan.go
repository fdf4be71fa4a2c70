package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// ApplyLoanCommand borrows credits on the current reputation tier
type ApplyLoanCommand struct {
	SessionID string
	Amount    int
}

// ApplyLoanResponse describes the issued loan
type ApplyLoanResponse struct {
	Principal   int
	RatePercent string
	Remaining   int
	Interest    int
	Credits     int
	LoanCount   int
}

// ApplyLoanHandler handles the ApplyLoan command
type ApplyLoanHandler struct {
	runner *common.SessionRunner
}

// NewApplyLoanHandler creates a new ApplyLoanHandler
func NewApplyLoanHandler(runner *common.SessionRunner) *ApplyLoanHandler {
	return &ApplyLoanHandler{runner: runner}
}

// Handle executes the ApplyLoan command
func (h *ApplyLoanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ApplyLoanCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ApplyLoanCommand")
	}

	var response ApplyLoanResponse
	err := h.runner.Run(ctx, cmd.SessionID, func(s *game.Session) error {
		loan, err := s.ApplyLoan(cmd.Amount)
		if err != nil {
			return err
		}
		response = ApplyLoanResponse{
			Principal:   loan.Principal(),
			RatePercent: loan.Rate().Shift(2).String(),
			Remaining:   loan.Remaining(),
			Interest:    loan.Interest(),
			Credits:     s.Player().Credits(),
			LoanCount:   len(s.Business().Loans()),
		}

		common.LoggerFromContext(ctx).Info("loan issued",
			zap.String("session", cmd.SessionID),
			zap.Int("principal", response.Principal),
			zap.String("rate", response.RatePercent),
			zap.Int("credits", response.Credits),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}
