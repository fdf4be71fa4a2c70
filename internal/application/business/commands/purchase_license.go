package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/business"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// PurchaseLicenseCommand buys a business license by id or name
type PurchaseLicenseCommand struct {
	SessionID string
	License   string
}

// PurchaseLicenseResponse carries the license and the resulting standing
type PurchaseLicenseResponse struct {
	License    business.License
	Reputation int
	Credits    int
}

// PurchaseLicenseHandler handles the PurchaseLicense command
type PurchaseLicenseHandler struct {
	runner *common.SessionRunner
}

// NewPurchaseLicenseHandler creates a new PurchaseLicenseHandler
func NewPurchaseLicenseHandler(runner *common.SessionRunner) *PurchaseLicenseHandler {
	return &PurchaseLicenseHandler{runner: runner}
}

// Handle executes the PurchaseLicense command
func (h *PurchaseLicenseHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*PurchaseLicenseCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PurchaseLicenseCommand")
	}

	var response PurchaseLicenseResponse
	err := h.runner.Run(ctx, cmd.SessionID, func(s *game.Session) error {
		license, err := s.PurchaseLicense(cmd.License)
		if err != nil {
			return err
		}
		response.License = license
		response.Reputation = s.Business().Reputation()
		response.Credits = s.Player().Credits()

		common.LoggerFromContext(ctx).Info("license purchased",
			zap.String("session", cmd.SessionID),
			zap.String("license", license.ID),
			zap.Int("cost", license.Cost),
			zap.Int("reputation", response.Reputation),
			zap.Int("credits", response.Credits),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}
