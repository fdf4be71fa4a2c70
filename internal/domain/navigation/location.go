package navigation

import (
	"fmt"
	"sort"
)

// Location is an immutable tradeable node of the galaxy.
// Its produce and consume sets are disjoint; connections map neighbour ids to travel days.
type Location struct {
	id                 string
	name               string
	system             string
	description        string
	produces           map[string]bool
	consumes           map[string]bool
	distanceFromOrigin float64
	connections        map[string]float64
}

// LocationSpec carries the raw data for one location
type LocationSpec struct {
	ID                 string
	Name               string
	System             string
	Description        string
	Produces           []string
	Consumes           []string
	DistanceFromOrigin float64
	Connections        map[string]float64
}

func newLocation(spec LocationSpec) (*Location, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("%w: id cannot be empty", ErrInvalidLocation)
	}
	if spec.System == "" {
		return nil, fmt.Errorf("%w: %s has no system", ErrInvalidLocation, spec.ID)
	}
	if spec.DistanceFromOrigin < 0 {
		return nil, fmt.Errorf("%w: %s has negative distance from origin", ErrInvalidLocation, spec.ID)
	}

	produces := make(map[string]bool, len(spec.Produces))
	for _, c := range spec.Produces {
		produces[c] = true
	}
	consumes := make(map[string]bool, len(spec.Consumes))
	for _, c := range spec.Consumes {
		if produces[c] {
			return nil, fmt.Errorf("%w: %s both produces and consumes %s", ErrInvalidLocation, spec.ID, c)
		}
		consumes[c] = true
	}

	connections := make(map[string]float64, len(spec.Connections))
	for to, days := range spec.Connections {
		if to == spec.ID {
			return nil, fmt.Errorf("%w: %s connects to itself", ErrInvalidLocation, spec.ID)
		}
		if days <= 0 {
			return nil, fmt.Errorf("%w: %s -> %s travel time must be positive", ErrInvalidLocation, spec.ID, to)
		}
		connections[to] = days
	}

	name := spec.Name
	if name == "" {
		name = spec.ID
	}

	return &Location{
		id:                 spec.ID,
		name:               name,
		system:             spec.System,
		description:        spec.Description,
		produces:           produces,
		consumes:           consumes,
		distanceFromOrigin: spec.DistanceFromOrigin,
		connections:        connections,
	}, nil
}

func (l *Location) ID() string {
	return l.id
}

func (l *Location) Name() string {
	return l.name
}

func (l *Location) System() string {
	return l.system
}

func (l *Location) Description() string {
	return l.description
}

func (l *Location) DistanceFromOrigin() float64 {
	return l.distanceFromOrigin
}

// Produces reports whether the location produces the commodity
func (l *Location) Produces(commodityID string) bool {
	return l.produces[commodityID]
}

// Consumes reports whether the location consumes the commodity
func (l *Location) Consumes(commodityID string) bool {
	return l.consumes[commodityID]
}

// ProducesAny reports whether the location produces at least one of the commodities
func (l *Location) ProducesAny(commodityIDs ...string) bool {
	for _, id := range commodityIDs {
		if l.produces[id] {
			return true
		}
	}
	return false
}

// ProducedCommodities returns the produce set sorted
func (l *Location) ProducedCommodities() []string {
	return sortedKeys(l.produces)
}

// ConsumedCommodities returns the consume set sorted
func (l *Location) ConsumedCommodities() []string {
	return sortedKeys(l.consumes)
}

// ConnectionTime returns the explicit travel time to a neighbour
func (l *Location) ConnectionTime(to string) (float64, bool) {
	days, ok := l.connections[to]
	return days, ok
}

// Connections returns a copy of the explicit connection table
func (l *Location) Connections() map[string]float64 {
	out := make(map[string]float64, len(l.connections))
	for id, days := range l.connections {
		out[id] = days
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
