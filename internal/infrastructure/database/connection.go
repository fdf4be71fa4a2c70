package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/persistence"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/config"
)

const inMemory = ":memory:"

// NewConnection opens the ledger database. SQLite without a path is in memory and
// lives only as long as the process.
func NewConnection(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("opening %s ledger database: %w", cfg.Type, err)
	}
	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("reaching %s connection pool: %w", cfg.Type, err)
	}

	if cfg.Type == "postgres" {
		pool.SetMaxOpenConns(cfg.Pool.MaxOpen)
		pool.SetMaxIdleConns(cfg.Pool.MaxIdle)
		pool.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	} else if sqlitePath(cfg) == inMemory {
		// every extra connection would see its own empty database
		pool.SetMaxOpenConns(1)
	}
	return db, nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Type {
	case "postgres":
		return postgres.Open(cfg.URL), nil
	case "sqlite":
		return sqlite.Open(sqlitePath(cfg)), nil
	}
	return nil, fmt.Errorf("database type %q is not supported (use sqlite or postgres)", cfg.Type)
}

func sqlitePath(cfg *config.DatabaseConfig) string {
	if cfg.Path == "" {
		return inMemory
	}
	return cfg.Path
}

// NewTestConnection is a migrated in-memory SQLite database
func NewTestConnection() (*gorm.DB, error) {
	db, err := NewConnection(&config.DatabaseConfig{Type: "sqlite", Path: inMemory})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates or updates the ledger and price history tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&persistence.TransactionModel{}, &persistence.MarketPriceHistoryModel{}); err != nil {
		return fmt.Errorf("migrating ledger schema: %w", err)
	}
	return nil
}

// Close releases the pool behind db
func Close(db *gorm.DB) error {
	pool, err := db.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}
