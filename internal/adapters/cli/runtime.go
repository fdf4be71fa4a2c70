package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/metrics"
	"github.com/andrescamacho/tradewinds-go/internal/adapters/persistence"
	"github.com/andrescamacho/tradewinds-go/internal/application/setup"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/config"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/database"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/logging"
)

// runtime holds everything a subcommand needs and releases it on Close
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	app    *setup.Application
	server *metrics.Server
}

// loadRuntimeConfig applies the persistent flags on top of the loaded configuration
func loadRuntimeConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Type = "sqlite"
		cfg.Database.Path = dbPath
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// openRuntime loads configuration, connects to the ledger database and assembles the application
func openRuntime() (*runtime, error) {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logger, db: db}

	deps := setup.Dependencies{
		Config:          cfg,
		Logger:          logger,
		Sessions:        persistence.NewInMemorySessionRepository(),
		TransactionRepo: persistence.NewGormTransactionRepository(db),
		HistoryRepo:     persistence.NewGormMarketPriceHistoryRepository(db),
	}

	if cfg.Metrics.Enabled {
		collectors, err := metrics.Enable()
		if err != nil {
			rt.Close()
			return nil, err
		}
		deps.CommandMetrics = collectors.Command
		rt.server = metrics.NewServer(cfg.Metrics.Address(), cfg.Metrics.Path, logger)
		rt.server.Start()
	}

	app, err := setup.NewApplication(deps)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to build application: %w", err)
	}
	rt.app = app

	logger.Debug("runtime ready",
		zap.String("database", cfg.Database.Type),
		zap.String("travel_mode", cfg.Game.TravelMode),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)
	return rt, nil
}

// Close stops the metrics server and closes the database
func (r *runtime) Close() {
	if r.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.server.Shutdown(ctx); err != nil {
			r.logger.Warn("failed to stop metrics server", zap.Error(err))
		}
	}
	if r.db != nil {
		if err := database.Close(r.db); err != nil {
			r.logger.Warn("failed to close database", zap.Error(err))
		}
	}
	_ = r.logger.Sync()
}
