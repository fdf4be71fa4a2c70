package navigation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

const (
	// DefaultFuelRate is credits of fuel per day of travel
	DefaultFuelRate = 25.0
	// MinimumFuelCost is charged for any trip, however short
	MinimumFuelCost = 10
)

// TravelMode selects how reachability and travel time are derived
type TravelMode string

const (
	// TravelModeExplicit uses only the connection table of each location
	TravelModeExplicit TravelMode = "explicit"
	// TravelModeSynthetic treats the galaxy as fully connected with Galaxy.Distance as travel time
	TravelModeSynthetic TravelMode = "synthetic"
)

// ParseTravelMode converts a configuration value into a TravelMode
func ParseTravelMode(s string) (TravelMode, error) {
	switch TravelMode(strings.ToLower(strings.TrimSpace(s))) {
	case TravelModeExplicit, "":
		return TravelModeExplicit, nil
	case TravelModeSynthetic:
		return TravelModeSynthetic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTravelMode, s)
	}
}

func (m TravelMode) String() string {
	return string(m)
}

// Leg is one planned hop between two locations
type Leg struct {
	From       *Location
	To         *Location
	TravelTime float64
	Days       int
	FuelCost   int
}

// TravelModel applies one graph mode and one fuel rate to every travel computation
type TravelModel struct {
	galaxy   *Galaxy
	mode     TravelMode
	fuelRate float64
}

// NewTravelModel creates a travel model over galaxy
func NewTravelModel(galaxy *Galaxy, mode TravelMode, fuelRate float64) (*TravelModel, error) {
	if mode != TravelModeExplicit && mode != TravelModeSynthetic {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTravelMode, mode)
	}
	if fuelRate <= 0 {
		return nil, fmt.Errorf("fuel rate must be positive, got %v", fuelRate)
	}
	return &TravelModel{galaxy: galaxy, mode: mode, fuelRate: fuelRate}, nil
}

func (m *TravelModel) Galaxy() *Galaxy {
	return m.galaxy
}

func (m *TravelModel) Mode() TravelMode {
	return m.mode
}

func (m *TravelModel) FuelRate() float64 {
	return m.fuelRate
}

// FuelCost returns max(10, round(days * rate))
func (m *TravelModel) FuelCost(travelTime float64) int {
	cost := int(math.Round(travelTime * m.fuelRate))
	if cost < MinimumFuelCost {
		return MinimumFuelCost
	}
	return cost
}

// TravelDays converts a travel time into whole elapsed days, never fewer than one
func TravelDays(travelTime float64) int {
	days := int(math.Round(travelTime))
	if days < 1 {
		return 1
	}
	return days
}

// Neighbors returns reachable location ids mapped to travel time
func (m *TravelModel) Neighbors(from *Location) map[string]float64 {
	if m.mode == TravelModeExplicit {
		return from.Connections()
	}
	out := make(map[string]float64, m.galaxy.Len()-1)
	for _, loc := range m.galaxy.ordered {
		if loc.id == from.id {
			continue
		}
		out[loc.id] = m.galaxy.Distance(from, loc)
	}
	return out
}

// Plan computes the leg from one location to another.
// Fails with UnknownDestination for an id outside the galaxy and NoRoute when unreachable.
func (m *TravelModel) Plan(fromID, toID string) (*Leg, error) {
	to, ok := m.galaxy.Location(toID)
	if !ok {
		return nil, shared.NewGameError(shared.KindUnknownDestination, "unknown destination %q", toID)
	}
	from, ok := m.galaxy.Location(fromID)
	if !ok {
		return nil, shared.NewGameError(shared.KindUnknownDestination, "unknown origin %q", fromID)
	}
	if from.id == to.id {
		return nil, shared.NewGameError(shared.KindNoRoute, "already at %s", to.name)
	}

	var travelTime float64
	if m.mode == TravelModeExplicit {
		days, ok := from.ConnectionTime(to.id)
		if !ok {
			return nil, shared.NewGameError(shared.KindNoRoute, "no direct route from %s to %s", from.name, to.name)
		}
		travelTime = days
	} else {
		travelTime = m.galaxy.Distance(from, to)
	}

	return &Leg{
		From:       from,
		To:         to,
		TravelTime: travelTime,
		Days:       TravelDays(travelTime),
		FuelCost:   m.FuelCost(travelTime),
	}, nil
}

// Destinations lists every leg out of a location, shortest first
func (m *TravelModel) Destinations(fromID string) ([]*Leg, error) {
	from, ok := m.galaxy.Location(fromID)
	if !ok {
		return nil, shared.NewGameError(shared.KindUnknownDestination, "unknown origin %q", fromID)
	}
	legs := make([]*Leg, 0)
	for toID := range m.Neighbors(from) {
		leg, err := m.Plan(from.id, toID)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}
	sort.Slice(legs, func(i, j int) bool {
		if legs[i].TravelTime != legs[j].TravelTime {
			return legs[i].TravelTime < legs[j].TravelTime
		}
		return legs[i].To.id < legs[j].To.id
	})
	return legs, nil
}
