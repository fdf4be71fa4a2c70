package setup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/metrics"
	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/application/events"
	"github.com/andrescamacho/tradewinds-go/internal/application/mediator"
	"github.com/andrescamacho/tradewinds-go/internal/domain/business"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
	"github.com/andrescamacho/tradewinds-go/internal/domain/navigation"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/config"
)

// Dependencies are the adapters an Application is assembled from
type Dependencies struct {
	Config          *config.Config
	Logger          *zap.Logger
	Sessions        game.SessionRepository
	TransactionRepo ledger.TransactionRepository
	HistoryRepo     market.PriceHistoryRepository
	Clock           shared.Clock

	// CommandMetrics times every request when metrics are enabled
	CommandMetrics *metrics.CommandMetricsCollector

	// Random overrides the seed from configuration when set
	Random common.RandomFactory
}

// Application is the wired mediator plus the pieces front ends need directly
type Application struct {
	Mediator mediator.Mediator
	Runner   *common.SessionRunner
	World    *game.World
	Logger   *zap.Logger
}

// NewApplication builds the world, registers every handler and installs middleware.
// Every request sent through the mediator carries the logger in its context.
func NewApplication(deps Dependencies) (*Application, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mode, err := navigation.ParseTravelMode(cfg.Game.TravelMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse travel mode: %w", err)
	}
	world, err := game.NewDefaultWorld(mode, cfg.Game.FuelRate)
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	random := deps.Random
	if random == nil {
		random = common.SeededRandomFactory(cfg.Game.Seed)
	}

	m := mediator.NewMediator()
	m.Use(common.LoggingMiddleware(logger))
	if deps.CommandMetrics != nil {
		m.Use(metrics.PrometheusMiddleware(deps.CommandMetrics))
	}

	runner := common.NewSessionRunner(deps.Sessions, events.NewRecorder(m))

	registry := NewHandlerRegistry(
		runner,
		world,
		GameTemplate(cfg),
		random,
		deps.TransactionRepo,
		deps.HistoryRepo,
		deps.Clock,
	)
	if err := registry.RegisterAll(m); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return &Application{
		Mediator: m,
		Runner:   runner,
		World:    world,
		Logger:   logger,
	}, nil
}

// Send dispatches a request with the application logger attached to ctx
func (a *Application) Send(ctx context.Context, request common.Request) (common.Response, error) {
	return a.Mediator.Send(common.WithLogger(ctx, a.Logger), request)
}

// GameTemplate converts configuration into new-game settings.
// Player and ship names are filled in per game.
func GameTemplate(cfg *config.Config) game.Config {
	return game.Config{
		StartingCredits: cfg.Game.StartingCredits,
		CargoCapacity:   cfg.Game.CargoCapacity,
		HomeLocation:    cfg.Game.HomeLocation,
		Business: business.Policy{
			IncorporationCost: cfg.Business.IncorporationCost,
			MaxLoans:          cfg.Business.MaxLoans,
			MinLoan:           cfg.Business.MinLoan,
		},
	}
}
