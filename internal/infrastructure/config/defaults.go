package config

import (
	"time"

	"github.com/spf13/viper"
)

// defaults sit beneath the YAML file and the environment, so an explicit zero in
// either one is kept.
var defaults = map[string]any{
	"game.starting_credits": 1000,
	"game.cargo_capacity":   50,
	"game.home_location":    "earth_station",
	"game.fuel_rate":        25.0,
	"game.travel_mode":      "explicit",

	"business.incorporation_cost": 5000,
	"business.max_loans":          3,
	"business.min_loan":           1000,

	"database.type":              "sqlite",
	"database.pool.max_open":     10,
	"database.pool.max_idle":     2,
	"database.pool.max_lifetime": 5 * time.Minute,

	"logging.level":  "info",
	"logging.format": "console",
	"logging.output": "stderr",

	"metrics.host": "localhost",
	"metrics.port": 9090,
	"metrics.path": "/metrics",
}

// SetDefaults registers the built-in value of every setting that has one
func SetDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// fillDerived sets values that depend on other settings
func fillDerived(cfg *Config) {
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = ":memory:"
	}
}
