package cli

import (
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/config"
)

const (
	fallbackPlayerName = "Captain"
	fallbackShipName   = "Starwind"
)

// Captain names the player and ship for a new game
type Captain struct {
	PlayerName string
	ShipName   string
}

// resolveCaptain resolves names from flags or defaults.
// Priority: CLI flags (--name, --ship) > user config defaults > built-in names.
// A missing or unreadable user config is not an error.
func resolveCaptain(handler *config.UserConfigHandler, name, ship string) Captain {
	captain := Captain{PlayerName: name, ShipName: ship}

	if handler != nil && (captain.PlayerName == "" || captain.ShipName == "") {
		if userCfg, err := handler.Load(); err == nil {
			if captain.PlayerName == "" {
				captain.PlayerName = userCfg.DefaultPlayerName
			}
			if captain.ShipName == "" {
				captain.ShipName = userCfg.DefaultShipName
			}
		}
	}

	if captain.PlayerName == "" {
		captain.PlayerName = fallbackPlayerName
	}
	if captain.ShipName == "" {
		captain.ShipName = fallbackShipName
	}
	return captain
}
