package game

import (
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
	"github.com/andrescamacho/tradewinds-go/internal/domain/navigation"
)

// World is the immutable part of the simulation shared by every session
type World struct {
	catalog *market.Catalog
	galaxy  *navigation.Galaxy
	travel  *navigation.TravelModel
}

// NewWorld bundles the catalog, galaxy and travel model
func NewWorld(catalog *market.Catalog, galaxy *navigation.Galaxy, travel *navigation.TravelModel) *World {
	return &World{catalog: catalog, galaxy: galaxy, travel: travel}
}

// NewDefaultWorld builds the standard catalog and galaxy under the given travel mode and fuel rate
func NewDefaultWorld(mode navigation.TravelMode, fuelRate float64) (*World, error) {
	catalog := market.DefaultCatalog()
	galaxy := navigation.DefaultGalaxy(catalog)
	travel, err := navigation.NewTravelModel(galaxy, mode, fuelRate)
	if err != nil {
		return nil, err
	}
	return NewWorld(catalog, galaxy, travel), nil
}

func (w *World) Catalog() *market.Catalog {
	return w.catalog
}

func (w *World) Galaxy() *navigation.Galaxy {
	return w.galaxy
}

func (w *World) Travel() *navigation.TravelModel {
	return w.travel
}
