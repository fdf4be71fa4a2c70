package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AppliesGameDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1000, cfg.Game.StartingCredits)
	assert.Equal(t, 50, cfg.Game.CargoCapacity)
	assert.Equal(t, "earth_station", cfg.Game.HomeLocation)
	assert.Equal(t, 25.0, cfg.Game.FuelRate)
	assert.Equal(t, "explicit", cfg.Game.TravelMode)
	assert.Equal(t, 5000, cfg.Business.IncorporationCost)
	assert.Equal(t, 3, cfg.Business.MaxLoans)
	assert.Equal(t, 1000, cfg.Business.MinLoan)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_RejectsUnknownTravelMode(t *testing.T) {
	cfg := Default()
	cfg.Game.TravelMode = "warp"

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.travel_mode")
}

func TestValidateConfig_PostgresRequiresURL(t *testing.T) {
	cfg := Default()
	cfg.Database.Type = "postgres"
	cfg.Database.URL = ""

	assert.Error(t, ValidateConfig(cfg))

	cfg.Database.URL = "postgresql://tw:tw@localhost:5432/tradewinds"
	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_FileOutputRequiresPath(t *testing.T) {
	cfg := Default()
	cfg.Logging.Output = "file"

	assert.Error(t, ValidateConfig(cfg))
}

func TestLoadConfig_ReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "game:\n  fuel_rate: 30\n  travel_mode: synthetic\n  seed: 42\nbusiness:\n  incorporation_cost: 7000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Game.FuelRate)
	assert.Equal(t, "synthetic", cfg.Game.TravelMode)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, 7000, cfg.Business.IncorporationCost)
	assert.Equal(t, 1000, cfg.Game.StartingCredits)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  starting_credits: 2000\n"), 0644))
	t.Setenv("TW_GAME_STARTING_CREDITS", "3000")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Game.StartingCredits)
}

func TestLoadConfig_KeepsExplicitZeros(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "game:\n  starting_credits: 0\nbusiness:\n  incorporation_cost: 0\n  max_loans: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Game.StartingCredits)
	assert.Equal(t, 0, cfg.Business.IncorporationCost)
	assert.Equal(t, 0, cfg.Business.MaxLoans)
	assert.Equal(t, 50, cfg.Game.CargoCapacity)
	assert.Equal(t, 1000, cfg.Business.MinLoan)
}

func TestLoadConfig_EnvironmentZeroOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  starting_credits: 2000\n"), 0o644))
	t.Setenv("TW_GAME_STARTING_CREDITS", "0")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Game.StartingCredits)
}

func TestLoadConfig_DatabaseURLSelectsPostgres(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  fuel_rate: 25\n"), 0o644))
	t.Setenv("DATABASE_URL", "postgresql://tw:tw@localhost:5432/tradewinds")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "postgresql://tw:tw@localhost:5432/tradewinds", cfg.Database.URL)
}

func TestUserConfigHandler_RoundTrip(t *testing.T) {
	handler, err := NewUserConfigHandlerAt(t.TempDir())
	require.NoError(t, err)

	empty, err := handler.Load()
	require.NoError(t, err)
	assert.Empty(t, empty.DefaultPlayerName)

	require.NoError(t, handler.SetDefaultCaptain("Ada", "Nautilus"))

	loaded, err := handler.Load()
	require.NoError(t, err)
	assert.Equal(t, "Ada", loaded.DefaultPlayerName)
	assert.Equal(t, "Nautilus", loaded.DefaultShipName)

	require.NoError(t, handler.SetDefaultCaptain("", "Endeavour"))
	renamed, err := handler.Load()
	require.NoError(t, err)
	assert.Equal(t, "Ada", renamed.DefaultPlayerName)
	assert.Equal(t, "Endeavour", renamed.DefaultShipName)

	require.NoError(t, handler.ClearDefaultCaptain())
	cleared, err := handler.Load()
	require.NoError(t, err)
	assert.Empty(t, cleared.DefaultShipName)
}

func TestUserConfigHandler_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	handler, err := NewUserConfigHandlerAt(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{captain"), 0o644))

	_, err = handler.Load()

	assert.Error(t, err)
	assert.Error(t, handler.SetDefaultCaptain("Ada", ""))
}

func TestMetricsConfig_Address(t *testing.T) {
	assert.Equal(t, "localhost:9090", MetricsConfig{Host: "localhost", Port: 9090}.Address())
	assert.Equal(t, "[::1]:9464", MetricsConfig{Host: "::1", Port: 9464}.Address())
}
