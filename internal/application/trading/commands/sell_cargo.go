package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/metrics"
	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/player"
)

// SellCargoCommand sells a commodity at the current market.
// All sells every unit held.
type SellCargoCommand struct {
	SessionID string
	Commodity string
	Quantity  int
	All       bool
}

// SellCargoResponse carries the trade receipt
type SellCargoResponse struct {
	Receipt *player.TradeReceipt
}

// SellCargoHandler handles the SellCargo command
type SellCargoHandler struct {
	runner *common.SessionRunner
}

// NewSellCargoHandler creates a new SellCargoHandler
func NewSellCargoHandler(runner *common.SessionRunner) *SellCargoHandler {
	return &SellCargoHandler{runner: runner}
}

// Handle executes the SellCargo command
func (h *SellCargoHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SellCargoCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SellCargoCommand")
	}

	var receipt *player.TradeReceipt
	err := h.runner.Run(ctx, cmd.SessionID, func(s *game.Session) error {
		quantity := cmd.Quantity
		if cmd.All {
			held, err := s.Held(cmd.Commodity)
			if err != nil {
				return err
			}
			quantity = held
		}

		var err error
		receipt, err = s.Sell(cmd.Commodity, quantity)
		if err != nil {
			return err
		}

		common.LoggerFromContext(ctx).Info("cargo sold",
			zap.String("session", cmd.SessionID),
			zap.String("commodity", receipt.Commodity),
			zap.Int("units", receipt.Quantity),
			zap.Int("unit_price", receipt.UnitPrice),
			zap.Int("credits", receipt.CreditsAfter),
			zap.String("location", s.Player().Location()),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTrade(cmd.SessionID, receipt.Commodity, "sell", receipt.Quantity, receipt.UnitPrice)
	return &SellCargoResponse{Receipt: receipt}, nil
}
