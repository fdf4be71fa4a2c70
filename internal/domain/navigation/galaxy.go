package navigation

import (
	"fmt"
	"math"
	"strings"

	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
)

const (
	// sameSystemDistance is the hop between two locations sharing a star system
	sameSystemDistance = 0.1
	// interstellarFloor is added to every cross-system distance so it stays positive
	interstellarFloor = 1.0
)

// Galaxy is the immutable location graph, built once and shared read-only
type Galaxy struct {
	locations map[string]*Location
	ordered   []*Location
}

// NewGalaxy validates and assembles the location graph.
// Every produced/consumed commodity must be in the catalog and every connection must name a known location.
func NewGalaxy(catalog *market.Catalog, specs ...LocationSpec) (*Galaxy, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no locations", ErrInvalidGalaxy)
	}

	g := &Galaxy{
		locations: make(map[string]*Location, len(specs)),
		ordered:   make([]*Location, 0, len(specs)),
	}
	for _, spec := range specs {
		if _, dup := g.locations[spec.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate location %s", ErrInvalidGalaxy, spec.ID)
		}
		loc, err := newLocation(spec)
		if err != nil {
			return nil, err
		}
		for _, c := range append(loc.ProducedCommodities(), loc.ConsumedCommodities()...) {
			if !catalog.Has(c) {
				return nil, fmt.Errorf("%w: %s references unknown commodity %s", ErrInvalidGalaxy, loc.id, c)
			}
		}
		g.locations[loc.id] = loc
		g.ordered = append(g.ordered, loc)
	}

	for _, loc := range g.ordered {
		for to := range loc.connections {
			if _, ok := g.locations[to]; !ok {
				return nil, fmt.Errorf("%w: %s connects to unknown location %s", ErrInvalidGalaxy, loc.id, to)
			}
		}
	}
	return g, nil
}

// Location returns the location with the given id
func (g *Galaxy) Location(id string) (*Location, bool) {
	loc, ok := g.locations[id]
	return loc, ok
}

// Has reports whether id names a location
func (g *Galaxy) Has(id string) bool {
	_, ok := g.locations[id]
	return ok
}

// Locations returns every location in definition order
func (g *Galaxy) Locations() []*Location {
	out := make([]*Location, len(g.ordered))
	copy(out, g.ordered)
	return out
}

// Len returns the number of locations
func (g *Galaxy) Len() int {
	return len(g.ordered)
}

// Distance is the synthetic travel time between two locations:
// a short hop inside one system, otherwise the gap in distance from origin plus a floor.
func (g *Galaxy) Distance(a, b *Location) float64 {
	if a.system == b.system {
		return sameSystemDistance
	}
	return math.Abs(a.distanceFromOrigin-b.distanceFromOrigin) + interstellarFloor
}

// Resolve finds a location from player input: exact id, id with spaces as underscores,
// name substring, leading id word ("wolf", "kepler"), then system substring.
func (g *Galaxy) Resolve(query string) (*Location, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}
	if loc, ok := g.locations[q]; ok {
		return loc, true
	}
	if loc, ok := g.locations[strings.ReplaceAll(q, " ", "_")]; ok {
		return loc, true
	}
	for _, loc := range g.ordered {
		if strings.Contains(strings.ToLower(loc.name), q) {
			return loc, true
		}
	}
	for _, loc := range g.ordered {
		if strings.Contains(q, idStem(loc.id)) {
			return loc, true
		}
	}
	for _, loc := range g.ordered {
		if strings.Contains(strings.ToLower(loc.system), q) {
			return loc, true
		}
	}
	return nil, false
}

// idStem returns the leading word of an id with any digits dropped: wolf359_outpost -> wolf
func idStem(id string) string {
	stem, _, _ := strings.Cut(id, "_")
	return strings.TrimRight(stem, "0123456789")
}
