package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// UserConfig holds per-user defaults that `play` falls back to when no flags are given.
// It lives in ~/.tradewinds/config.json, apart from the game config file.
type UserConfig struct {
	DefaultPlayerName string `json:"default_player_name,omitempty"`
	DefaultShipName   string `json:"default_ship_name,omitempty"`
}

// UserConfigHandler reads and writes one user config file
type UserConfigHandler struct {
	configPath string
}

func NewUserConfigHandler() (*UserConfigHandler, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}
	return NewUserConfigHandlerAt(filepath.Join(home, ".tradewinds"))
}

// NewUserConfigHandlerAt keeps config.json in dir, creating dir if needed
func NewUserConfigHandlerAt(dir string) (*UserConfigHandler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	return &UserConfigHandler{configPath: filepath.Join(dir, "config.json")}, nil
}

// Load returns an empty UserConfig until something has been saved
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	raw, err := os.ReadFile(h.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &UserConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", h.configPath, err)
	}

	cfg := &UserConfig{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %w", h.configPath, err)
	}
	return cfg, nil
}

func (h *UserConfigHandler) Save(cfg *UserConfig) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding user config: %w", err)
	}
	if err := os.WriteFile(h.configPath, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", h.configPath, err)
	}
	return nil
}

// update loads the file, applies change and saves the result
func (h *UserConfigHandler) update(change func(*UserConfig)) error {
	cfg, err := h.Load()
	if err != nil {
		return err
	}
	change(cfg)
	return h.Save(cfg)
}

// SetDefaultCaptain remembers the captain and ship for new games. Empty arguments
// leave the stored names alone.
func (h *UserConfigHandler) SetDefaultCaptain(playerName, shipName string) error {
	return h.update(func(cfg *UserConfig) {
		if playerName != "" {
			cfg.DefaultPlayerName = playerName
		}
		if shipName != "" {
			cfg.DefaultShipName = shipName
		}
	})
}

func (h *UserConfigHandler) ClearDefaultCaptain() error {
	return h.update(func(cfg *UserConfig) { *cfg = UserConfig{} })
}

func (h *UserConfigHandler) GetConfigPath() string {
	return h.configPath
}
