package market

import (
	"fmt"
	"sort"
	"strings"
)

// Commodity is an immutable tradeable good
type Commodity struct {
	id          string
	name        string
	basePrice   int
	volatility  float64
	description string
}

// NewCommodity creates a Commodity with validation
func NewCommodity(id, name string, basePrice int, volatility float64, description string) (*Commodity, error) {
	if id == "" {
		return nil, ErrInvalidCommodityID
	}
	if basePrice <= 0 {
		return nil, fmt.Errorf("%w: base price for %s must be positive, got %d", ErrInvalidCommodity, id, basePrice)
	}
	if volatility <= 0 || volatility > 1 {
		return nil, fmt.Errorf("%w: volatility for %s must be in (0,1], got %.2f", ErrInvalidCommodity, id, volatility)
	}
	if name == "" {
		name = id
	}
	return &Commodity{
		id:          id,
		name:        name,
		basePrice:   basePrice,
		volatility:  volatility,
		description: description,
	}, nil
}

func (c *Commodity) ID() string          { return c.id }
func (c *Commodity) Name() string        { return c.name }
func (c *Commodity) BasePrice() int      { return c.basePrice }
func (c *Commodity) Volatility() float64 { return c.volatility }
func (c *Commodity) Description() string { return c.description }

// Catalog is the immutable registry of commodities, shared read-only across sessions
type Catalog struct {
	commodities map[string]*Commodity
	ordered     []*Commodity
}

// NewCatalog builds a catalog, rejecting duplicate ids
func NewCatalog(commodities ...*Commodity) (*Catalog, error) {
	if len(commodities) == 0 {
		return nil, fmt.Errorf("%w: catalog cannot be empty", ErrInvalidCommodity)
	}
	byID := make(map[string]*Commodity, len(commodities))
	ordered := make([]*Commodity, 0, len(commodities))
	for _, c := range commodities {
		if _, dup := byID[c.id]; dup {
			return nil, fmt.Errorf("%w: duplicate commodity %s", ErrInvalidCommodity, c.id)
		}
		byID[c.id] = c
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].id < ordered[j].id })
	return &Catalog{commodities: byID, ordered: ordered}, nil
}

// Get returns the commodity with the given id
func (c *Catalog) Get(id string) (*Commodity, bool) {
	commodity, ok := c.commodities[id]
	return commodity, ok
}

// Has reports whether id names a catalog commodity
func (c *Catalog) Has(id string) bool {
	_, ok := c.commodities[id]
	return ok
}

// All returns the commodities sorted by id
func (c *Catalog) All() []*Commodity {
	out := make([]*Commodity, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of commodities
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Resolve finds a commodity by id or display name, case-insensitively.
// "luxury goods" resolves to luxury and "raw materials" to materials.
func (c *Catalog) Resolve(query string) (*Commodity, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}
	if commodity, ok := c.commodities[q]; ok {
		return commodity, true
	}
	for _, commodity := range c.ordered {
		if strings.ToLower(commodity.name) == q {
			return commodity, true
		}
	}
	return nil, false
}

// DefaultCatalog returns the ten standard commodities
func DefaultCatalog() *Catalog {
	specs := []struct {
		id, name    string
		base        int
		volatility  float64
		description string
	}{
		{"food", "food", 10, 0.15, "Basic nutritional supplies and preserved rations"},
		{"water", "water", 5, 0.10, "Purified water for drinking and life support"},
		{"medicine", "medicine", 50, 0.30, "Medical supplies and pharmaceuticals"},
		{"electronics", "electronics", 100, 0.25, "Computer components and electronic devices"},
		{"metals", "metals", 25, 0.20, "Refined metals for construction and manufacturing"},
		{"textiles", "textiles", 15, 0.20, "Fabrics and clothing materials"},
		{"weapons", "weapons", 200, 0.40, "Defense systems and security equipment"},
		{"fuel", "fuel", 20, 0.30, "Starship fuel and energy cells"},
		{"luxury", "luxury goods", 150, 0.35, "High-end consumer goods and art"},
		{"materials", "raw materials", 8, 0.15, "Unprocessed ores and raw resources"},
	}

	commodities := make([]*Commodity, 0, len(specs))
	for _, s := range specs {
		commodity, err := NewCommodity(s.id, s.name, s.base, s.volatility, s.description)
		if err != nil {
			panic(fmt.Sprintf("default catalog: %v", err))
		}
		commodities = append(commodities, commodity)
	}
	catalog, err := NewCatalog(commodities...)
	if err != nil {
		panic(fmt.Sprintf("default catalog: %v", err))
	}
	return catalog
}
