package shared

import (
	"fmt"
	"sort"
)

// CargoItem is one line of a cargo manifest
type CargoItem struct {
	Commodity string
	Units     int
}

// Cargo is a ship hold: commodity id -> positive quantity under a fixed capacity.
// Entries that reach zero are removed.
type Cargo struct {
	capacity int
	items    map[string]int
}

// NewCargo creates an empty hold with validation
func NewCargo(capacity int) (*Cargo, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cargo capacity must be positive, got %d", capacity)
	}
	return &Cargo{
		capacity: capacity,
		items:    make(map[string]int),
	}, nil
}

// Capacity returns the fixed maximum number of units
func (c *Cargo) Capacity() int {
	return c.capacity
}

// Units returns the total units currently loaded
func (c *Cargo) Units() int {
	total := 0
	for _, units := range c.items {
		total += units
	}
	return total
}

// AvailableCapacity returns the free space in the hold
func (c *Cargo) AvailableCapacity() int {
	return c.capacity - c.Units()
}

// IsEmpty checks if the hold carries nothing
func (c *Cargo) IsEmpty() bool {
	return len(c.items) == 0
}

// GetItemUnits gets units of a commodity in cargo (0 if not present)
func (c *Cargo) GetItemUnits(commodity string) int {
	return c.items[commodity]
}

// HasItem checks if cargo contains at least minUnits of a commodity
func (c *Cargo) HasItem(commodity string, minUnits int) bool {
	return c.GetItemUnits(commodity) >= minUnits
}

// Load adds units of a commodity. Fails without mutation if the hold would overflow.
func (c *Cargo) Load(commodity string, units int) error {
	if units <= 0 {
		return fmt.Errorf("units to load must be positive, got %d", units)
	}
	if units > c.AvailableCapacity() {
		return fmt.Errorf("cannot load %d units: only %d free", units, c.AvailableCapacity())
	}
	c.items[commodity] += units
	return nil
}

// Unload removes units of a commodity, dropping the entry at zero
func (c *Cargo) Unload(commodity string, units int) error {
	if units <= 0 {
		return fmt.Errorf("units to unload must be positive, got %d", units)
	}
	held := c.items[commodity]
	if units > held {
		return fmt.Errorf("cannot unload %d %s: only %d held", units, commodity, held)
	}
	if held == units {
		delete(c.items, commodity)
		return nil
	}
	c.items[commodity] = held - units
	return nil
}

// Manifest returns the hold contents sorted by commodity id
func (c *Cargo) Manifest() []CargoItem {
	manifest := make([]CargoItem, 0, len(c.items))
	for commodity, units := range c.items {
		manifest = append(manifest, CargoItem{Commodity: commodity, Units: units})
	}
	sort.Slice(manifest, func(i, j int) bool {
		return manifest[i].Commodity < manifest[j].Commodity
	})
	return manifest
}
