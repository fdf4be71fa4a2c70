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

// BuyCargoCommand buys a commodity at the current market.
// All buys as many units as the captain can afford and carry.
type BuyCargoCommand struct {
	SessionID string
	Commodity string
	Quantity  int
	All       bool
}

// BuyCargoResponse carries the trade receipt
type BuyCargoResponse struct {
	Receipt *player.TradeReceipt
}

// BuyCargoHandler handles the BuyCargo command
type BuyCargoHandler struct {
	runner *common.SessionRunner
}

// NewBuyCargoHandler creates a new BuyCargoHandler
func NewBuyCargoHandler(runner *common.SessionRunner) *BuyCargoHandler {
	return &BuyCargoHandler{runner: runner}
}

// Handle executes the BuyCargo command
func (h *BuyCargoHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*BuyCargoCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BuyCargoCommand")
	}

	var receipt *player.TradeReceipt
	err := h.runner.Run(ctx, cmd.SessionID, func(s *game.Session) error {
		quantity := cmd.Quantity
		if cmd.All {
			affordable, err := s.MaxBuyable(cmd.Commodity)
			if err != nil {
				return err
			}
			quantity = affordable
		}

		var err error
		receipt, err = s.Buy(cmd.Commodity, quantity)
		if err != nil {
			return err
		}

		common.LoggerFromContext(ctx).Info("cargo purchased",
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

	metrics.RecordTrade(cmd.SessionID, receipt.Commodity, "buy", receipt.Quantity, receipt.UnitPrice)
	return &BuyCargoResponse{Receipt: receipt}, nil
}
