package config

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is everything tunable about a TradeWinds run: the economy rules of a new
// game and the infrastructure the ledger and logs go to.
type Config struct {
	Game     GameConfig     `mapstructure:"game"`
	Business BusinessConfig `mapstructure:"business"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// envPrefix namespaces overrides: TW_GAME_FUEL_RATE sets game.fuel_rate
const envPrefix = "TW"

// envKeys lists every leaf setting. Viper resolves environment variables only for
// keys it has seen, so each one is bound explicitly.
var envKeys = []string{
	"game.starting_credits", "game.cargo_capacity", "game.home_location",
	"game.fuel_rate", "game.travel_mode", "game.seed",
	"business.incorporation_cost", "business.max_loans", "business.min_loan",
	"database.type", "database.url", "database.path",
	"database.pool.max_open", "database.pool.max_idle", "database.pool.max_lifetime",
	"logging.level", "logging.format", "logging.output", "logging.file_path",
	"metrics.enabled", "metrics.host", "metrics.port", "metrics.path",
}

// LoadConfig layers environment over the YAML file over built-in defaults, then
// validates the result. Without configPath it looks for config.yaml in the working
// directory, ./configs and /etc/tradewinds; no file at all is fine.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load() // a .env file is optional

	v, err := readSources(configPath)
	if err != nil {
		return nil, err
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func readSources(configPath string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, dir := range []string{".", "./configs", "/etc/tradewinds"} {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading %s: %w", cmp.Or(configPath, "config.yaml"), err)
	}

	// A bare DATABASE_URL, as hosting platforms set it, selects postgres
	if url := os.Getenv("DATABASE_URL"); url != "" {
		v.Set("database.url", url)
		if !v.InConfig("database.type") && os.Getenv(envPrefix+"_DATABASE_TYPE") == "" {
			v.Set("database.type", "postgres")
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	fillDerived(cfg)
	return cfg, nil
}

// LoadConfigOrDefault is for read-only commands that should work with a broken config file
func LoadConfigOrDefault(configPath string) *Config {
	if cfg, err := LoadConfig(configPath); err == nil {
		return cfg
	}
	return Default()
}

// Default is a Config with only built-in defaults, as used by tests and the fallback above
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(err)
	}
	return cfg
}
