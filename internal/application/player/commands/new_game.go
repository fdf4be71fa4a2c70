package commands

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// NewGameCommand starts a new game session
type NewGameCommand struct {
	PlayerName string
	ShipName   string
}

// NewGameResponse identifies the new session and its opening status
type NewGameResponse struct {
	SessionID string
	Status    game.StatusView
}

// NewGameHandler handles the NewGame command
type NewGameHandler struct {
	runner   *common.SessionRunner
	world    *game.World
	template game.Config
	random   common.RandomFactory
}

// NewNewGameHandler creates a new NewGameHandler.
// template supplies starting credits, cargo capacity, home and business policy.
func NewNewGameHandler(
	runner *common.SessionRunner,
	world *game.World,
	template game.Config,
	random common.RandomFactory,
) *NewGameHandler {
	if random == nil {
		random = common.SeededRandomFactory(0)
	}
	return &NewGameHandler{
		runner:   runner,
		world:    world,
		template: template,
		random:   random,
	}
}

// Handle executes the NewGame command
func (h *NewGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*NewGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *NewGameCommand")
	}

	cfg := h.template
	cfg.PlayerName = strings.TrimSpace(cmd.PlayerName)
	cfg.ShipName = strings.TrimSpace(cmd.ShipName)

	session, err := game.NewSession(shared.NewSessionID(), h.world, cfg, h.random())
	if err != nil {
		return nil, err
	}

	if err := h.runner.Sessions().Add(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	// The home market was priced on creation
	h.runner.Publish(ctx, session)
	status := session.Status()

	common.LoggerFromContext(ctx).Info("new game started",
		zap.String("session", status.SessionID),
		zap.String("player", status.PlayerName),
		zap.String("ship", status.ShipName),
		zap.Int("credits", status.Credits),
		zap.String("location", status.LocationID),
	)

	return &NewGameResponse{
		SessionID: status.SessionID,
		Status:    status,
	}, nil
}
