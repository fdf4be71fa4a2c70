package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/metrics"
	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/manufacturing"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// BuildFactoryCommand builds a factory at the current location.
// Set FactoryType to build by type, or Commodity to build the type that automates it.
type BuildFactoryCommand struct {
	SessionID   string
	FactoryType string
	Commodity   string
}

// BuildFactoryResponse describes the new factory
type BuildFactoryResponse struct {
	LocationID  string
	TypeID      string
	TypeName    string
	Produces    string
	Cost        int
	DailyIncome int
	Suitable    bool
	Reputation  int
	Credits     int
}

// BuildFactoryHandler handles the BuildFactory command
type BuildFactoryHandler struct {
	runner *common.SessionRunner
}

// NewBuildFactoryHandler creates a new BuildFactoryHandler
func NewBuildFactoryHandler(runner *common.SessionRunner) *BuildFactoryHandler {
	return &BuildFactoryHandler{runner: runner}
}

// Handle executes the BuildFactory command
func (h *BuildFactoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*BuildFactoryCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BuildFactoryCommand")
	}
	if cmd.FactoryType == "" && cmd.Commodity == "" {
		return nil, shared.NewGameError(shared.KindInvalidInput, "build what? try food, electronics or mining")
	}

	var response BuildFactoryResponse
	err := h.runner.Run(ctx, cmd.SessionID, func(s *game.Session) error {
		var factory *manufacturing.Factory
		var err error
		if cmd.FactoryType != "" {
			factory, err = s.BuildFactory(cmd.FactoryType)
		} else {
			factory, err = s.BuildFactoryFor(cmd.Commodity)
		}
		if err != nil {
			return err
		}

		response = BuildFactoryResponse{
			LocationID:  factory.LocationID(),
			TypeID:      factory.Type().ID,
			TypeName:    factory.Type().Name,
			Produces:    factory.Produces(),
			Cost:        factory.Type().Cost,
			DailyIncome: factory.DailyIncome(),
			Suitable:    factory.Suitable(),
			Reputation:  s.Business().Reputation(),
			Credits:     s.Player().Credits(),
		}

		common.LoggerFromContext(ctx).Info("factory built",
			zap.String("session", cmd.SessionID),
			zap.String("type", response.TypeID),
			zap.String("location", response.LocationID),
			zap.Int("daily_income", response.DailyIncome),
			zap.Bool("suitable", response.Suitable),
			zap.Int("credits", response.Credits),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordFactoryBuilt(cmd.SessionID, response.TypeID, response.Suitable)
	return &response, nil
}
