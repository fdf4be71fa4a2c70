package market

import (
	"math"
	"sort"

	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// Supply/demand multiplier ranges
const (
	producedMultiplierMin = 0.6
	producedMultiplierMax = 0.8
	consumedMultiplierMin = 1.2
	consumedMultiplierMax = 1.6
	neutralMultiplierMin  = 0.9
	neutralMultiplierMax  = 1.1
)

// PriceBias is the view of a location the pricing engine needs
type PriceBias interface {
	ID() string
	Produces(commodityID string) bool
	Consumes(commodityID string) bool
}

// Note classifies a commodity at a location for display
type Note string

const (
	NoteLocalProduction Note = "local production"
	NoteHighDemand      Note = "high demand"
	NoteStandard        Note = "standard"
)

// NoteFor returns the market note for a commodity at a location
func NoteFor(loc PriceBias, commodityID string) Note {
	switch {
	case loc.Produces(commodityID):
		return NoteLocalProduction
	case loc.Consumes(commodityID):
		return NoteHighDemand
	default:
		return NoteStandard
	}
}

// PricingEngine derives market prices from the catalog and a location's produce/consume tags.
// The random source is its only non-determinism.
type PricingEngine struct {
	catalog *Catalog
	random  shared.RandomSource
}

// NewPricingEngine creates a pricing engine drawing from random
func NewPricingEngine(catalog *Catalog, random shared.RandomSource) *PricingEngine {
	return &PricingEngine{catalog: catalog, random: random}
}

// Catalog returns the catalog the engine prices
func (e *PricingEngine) Catalog() *Catalog {
	return e.catalog
}

// Price draws a fresh price for one commodity at a location
func (e *PricingEngine) Price(loc PriceBias, commodity *Commodity) int {
	var multiplier float64
	switch {
	case loc.Produces(commodity.ID()):
		multiplier = shared.Uniform(e.random, producedMultiplierMin, producedMultiplierMax)
	case loc.Consumes(commodity.ID()):
		multiplier = shared.Uniform(e.random, consumedMultiplierMin, consumedMultiplierMax)
	default:
		multiplier = shared.Uniform(e.random, neutralMultiplierMin, neutralMultiplierMax)
	}
	noise := shared.Uniform(e.random, -commodity.Volatility(), commodity.Volatility())

	price := int(math.Round(float64(commodity.BasePrice()) * multiplier * (1 + noise)))
	if price < 1 {
		return 1
	}
	return price
}

// Generate prices every catalog commodity at a location
func (e *PricingEngine) Generate(loc PriceBias) *Snapshot {
	prices := make(map[string]int, e.catalog.Len())
	for _, commodity := range e.catalog.All() {
		prices[commodity.ID()] = e.Price(loc, commodity)
	}
	return &Snapshot{locationID: loc.ID(), prices: prices}
}

// Snapshot is the current price of every catalog commodity at one location
type Snapshot struct {
	locationID string
	prices     map[string]int
}

// NewSnapshot builds a snapshot from explicit prices, rejecting prices below 1
func NewSnapshot(locationID string, prices map[string]int) (*Snapshot, error) {
	if locationID == "" {
		return nil, ErrInvalidLocationID
	}
	copied := make(map[string]int, len(prices))
	for id, price := range prices {
		if price < 1 {
			return nil, ErrInvalidPrice
		}
		copied[id] = price
	}
	return &Snapshot{locationID: locationID, prices: copied}, nil
}

func (s *Snapshot) LocationID() string {
	return s.locationID
}

// Price returns the price of a commodity
func (s *Snapshot) Price(commodityID string) (int, bool) {
	price, ok := s.prices[commodityID]
	return price, ok
}

// Prices returns a copy of the price table
func (s *Snapshot) Prices() map[string]int {
	out := make(map[string]int, len(s.prices))
	for id, price := range s.prices {
		out[id] = price
	}
	return out
}

// CommodityIDs returns the priced commodity ids in sorted order
func (s *Snapshot) CommodityIDs() []string {
	ids := make([]string, 0, len(s.prices))
	for id := range s.prices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Board holds one session's market snapshots. Only Regenerate writes a snapshot.
type Board struct {
	engine    *PricingEngine
	snapshots map[string]*Snapshot
}

// NewBoard creates an empty board priced by engine
func NewBoard(engine *PricingEngine) *Board {
	return &Board{
		engine:    engine,
		snapshots: make(map[string]*Snapshot),
	}
}

// Regenerate overwrites the location's snapshot with fresh prices
func (b *Board) Regenerate(loc PriceBias) *Snapshot {
	snapshot := b.engine.Generate(loc)
	b.snapshots[loc.ID()] = snapshot
	return snapshot
}

// Snapshot returns the location's snapshot, generating one on first access
func (b *Board) Snapshot(loc PriceBias) *Snapshot {
	if snapshot, ok := b.snapshots[loc.ID()]; ok {
		return snapshot
	}
	return b.Regenerate(loc)
}

// Known reports whether the location has been priced yet
func (b *Board) Known(locationID string) bool {
	_, ok := b.Lookup(locationID)
	return ok
}

// Lookup returns the last snapshot taken at a location without pricing it
func (b *Board) Lookup(locationID string) (*Snapshot, bool) {
	snapshot, ok := b.snapshots[locationID]
	return snapshot, ok
}

// Catalog returns the catalog behind the board's engine
func (b *Board) Catalog() *Catalog {
	return b.engine.Catalog()
}
