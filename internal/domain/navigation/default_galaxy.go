package navigation

import (
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
)

// HomeLocationID is where new players start
const HomeLocationID = "earth_station"

// DefaultLocationSpecs returns the twelve standard locations
func DefaultLocationSpecs() []LocationSpec {
	return []LocationSpec{
		{
			ID:          "earth_station",
			Name:        "Earth Station",
			System:      "Sol System",
			Description: "A massive orbital complex above humanity's birthworld",
			Produces:    []string{"luxury", "electronics", "medicine"},
			Consumes:    []string{"materials", "metals"},
			Connections: map[string]float64{"mars_colony": 0.5, "europa_station": 1.0, "titan_refinery": 1.5},
		},
		{
			ID:          "mars_colony",
			Name:        "New Olympia - Mars Colony",
			System:      "Sol System",
			Description: "The first permanent settlement on the Red Planet",
			Produces:    []string{"metals", "materials"},
			Consumes:    []string{"food", "water", "medicine"},
			Connections: map[string]float64{"earth_station": 0.5, "europa_station": 0.8},
		},
		{
			ID:          "europa_station",
			Name:        "Europan Deep Station",
			System:      "Sol System",
			Description: "An ice-mining facility beneath Europa's frozen surface",
			Produces:    []string{"water", "fuel"},
			Consumes:    []string{"electronics", "food", "textiles"},
			Connections: map[string]float64{"earth_station": 1.0, "mars_colony": 0.8, "titan_refinery": 1.2},
		},
		{
			ID:          "titan_refinery",
			Name:        "Titan Hydrocarbon Processing",
			System:      "Sol System",
			Description: "Industrial complex on Saturn's largest moon",
			Produces:    []string{"fuel", "materials"},
			Consumes:    []string{"electronics", "food"},
			Connections: map[string]float64{"earth_station": 1.5, "europa_station": 1.2},
		},
		{
			ID:                 "proxima_colony",
			Name:               "Port Centauri - Proxima Colony",
			System:             "Alpha Centauri",
			Description:        "Humanity's first interstellar outpost",
			Produces:           []string{"food"},
			Consumes:           []string{"electronics", "medicine", "luxury"},
			DistanceFromOrigin: 4.37,
			Connections:        map[string]float64{"sirius_hub": 2.0, "wolf359_outpost": 1.5},
		},
		{
			ID:                 "sirius_hub",
			Name:               "Sirius Commercial Station",
			System:             "Sirius System",
			Description:        "The bright star system's major trading post",
			Produces:           []string{"electronics", "weapons"},
			Consumes:           []string{"food", "materials"},
			DistanceFromOrigin: 8.6,
			Connections:        map[string]float64{"proxima_colony": 2.0, "vega_agricultural": 3.0, "altair_industrial": 2.5},
		},
		{
			ID:                 "vega_agricultural",
			Name:               "Vegan Breadbasket Worlds",
			System:             "Vega System",
			Description:        "Vast agricultural colonies under a brilliant blue star",
			Produces:           []string{"food", "textiles"},
			Consumes:           []string{"electronics", "metals", "medicine"},
			DistanceFromOrigin: 25.3,
			Connections:        map[string]float64{"sirius_hub": 3.0, "altair_industrial": 2.8},
		},
		{
			ID:                 "altair_industrial",
			Name:               "Altair Manufacturing Complex",
			System:             "Altair System",
			Description:        "The forge worlds of human space",
			Produces:           []string{"electronics", "weapons", "metals"},
			Consumes:           []string{"materials", "food", "water"},
			DistanceFromOrigin: 16.7,
			Connections:        map[string]float64{"sirius_hub": 2.5, "vega_agricultural": 2.8, "wolf359_outpost": 2.2},
		},
		{
			ID:                 "wolf359_outpost",
			Name:               "Wolf's Den Mining Station",
			System:             "Wolf 359",
			Description:        "A dangerous but profitable mining operation",
			Produces:           []string{"materials", "metals"},
			Consumes:           []string{"food", "water", "medicine"},
			DistanceFromOrigin: 7.9,
			Connections:        map[string]float64{"proxima_colony": 1.5, "altair_industrial": 2.2},
		},
		{
			ID:                 "trappist_research",
			Name:               "TRAPPIST-1 Science Station",
			System:             "TRAPPIST-1",
			Description:        "Cutting-edge research in a seven-planet system",
			Produces:           []string{"medicine", "electronics"},
			Consumes:           []string{"food", "luxury"},
			DistanceFromOrigin: 39.5,
			Connections:        map[string]float64{"gliese_station": 2.0, "kepler_paradise": 8.0},
		},
		{
			ID:                 "gliese_station",
			Name:               "Gliese Frontier Observatory",
			System:             "Gliese 581",
			Description:        "Humanity's far reach into the galaxy",
			Produces:           []string{"medicine"},
			Consumes:           []string{"food", "electronics", "water"},
			DistanceFromOrigin: 20.4,
			Connections:        map[string]float64{"trappist_research": 2.0},
		},
		{
			ID:                 "kepler_paradise",
			Name:               "New Eden Colony - Kepler-452b",
			System:             "Kepler-452",
			Description:        "An Earth-like paradise in the far reaches",
			Produces:           []string{"luxury", "food"},
			Consumes:           []string{"electronics", "medicine", "weapons"},
			DistanceFromOrigin: 1400,
			Connections:        map[string]float64{"trappist_research": 8.0},
		},
	}
}

// DefaultGalaxy builds the standard twelve-location galaxy against catalog
func DefaultGalaxy(catalog *market.Catalog) *Galaxy {
	g, err := NewGalaxy(catalog, DefaultLocationSpecs()...)
	if err != nil {
		panic(fmt.Sprintf("default galaxy: %v", err))
	}
	return g
}
