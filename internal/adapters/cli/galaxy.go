package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/navigation"
)

// NewGalaxyCommand creates the galaxy command with subcommands
func NewGalaxyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "galaxy",
		Short: "Browse locations, routes and commodities",
		Long: `Browse the static game world without starting a game.

Routes and fuel costs follow the configured travel mode and fuel rate.

Examples:
  tradewinds galaxy locations
  tradewinds galaxy routes
  tradewinds galaxy routes mars
  tradewinds galaxy commodities`,
	}

	cmd.AddCommand(newGalaxyLocationsCommand())
	cmd.AddCommand(newGalaxyRoutesCommand())
	cmd.AddCommand(newGalaxyCommoditiesCommand())

	return cmd
}

// loadWorld builds the world the configuration describes
func loadWorld() (*game.World, error) {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return nil, err
	}
	mode, err := navigation.ParseTravelMode(cfg.Game.TravelMode)
	if err != nil {
		return nil, err
	}
	return game.NewDefaultWorld(mode, cfg.Game.FuelRate)
}

// newGalaxyLocationsCommand creates the galaxy locations subcommand
func newGalaxyLocationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List every location",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := loadWorld()
			if err != nil {
				return err
			}
			displayLocations(cmd.OutOrStdout(), world)
			return nil
		},
	}
}

// newGalaxyRoutesCommand creates the galaxy routes subcommand
func newGalaxyRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes [location]",
		Short: "List routes with travel time and fuel cost",
		Long: `List the routes out of one location, or out of every location when none is given.

The location may be an id, part of its name or its system.

Examples:
  tradewinds galaxy routes
  tradewinds galaxy routes earth_station
  tradewinds galaxy routes jupiter`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := loadWorld()
			if err != nil {
				return err
			}

			origins := world.Galaxy().Locations()
			if len(args) == 1 {
				loc, ok := world.Galaxy().Resolve(args[0])
				if !ok {
					return fmt.Errorf("unknown location %q", args[0])
				}
				origins = []*navigation.Location{loc}
			}
			return displayRoutes(cmd.OutOrStdout(), world, origins)
		},
	}
}

// newGalaxyCommoditiesCommand creates the galaxy commodities subcommand
func newGalaxyCommoditiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commodities",
		Short: "List tradeable commodities and where they are produced",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := loadWorld()
			if err != nil {
				return err
			}
			displayCommodities(cmd.OutOrStdout(), world)
			return nil
		},
	}
}

func displayLocations(out io.Writer, world *game.World) {
	fmt.Fprintf(out, "\nLOCATIONS (%d)\n", world.Galaxy().Len())
	fmt.Fprintln(out, rule)

	w := newTable(out)
	fmt.Fprintln(w, "ID\tName\tSystem\tProduces\tConsumes")
	fmt.Fprintln(w, "──\t────\t──────\t────────\t────────")
	for _, loc := range world.Galaxy().Locations() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			loc.ID(),
			loc.Name(),
			loc.System(),
			joinOrDash(loc.ProducedCommodities()),
			joinOrDash(loc.ConsumedCommodities()),
		)
	}
	w.Flush()
}

func displayRoutes(out io.Writer, world *game.World, origins []*navigation.Location) error {
	travel := world.Travel()
	fmt.Fprintf(out, "\nROUTES (%s mode, fuel rate %.0f)\n", travel.Mode(), travel.FuelRate())
	fmt.Fprintln(out, rule)

	w := newTable(out)
	fmt.Fprintln(w, "From\tTo\tTime\tDays\tFuel")
	fmt.Fprintln(w, "────\t──\t────\t────\t────")
	for _, origin := range origins {
		legs, err := travel.Destinations(origin.ID())
		if err != nil {
			return err
		}
		if len(legs) == 0 {
			fmt.Fprintf(w, "%s\t(no routes)\t\t\t\n", origin.ID())
			continue
		}
		for _, leg := range legs {
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\t%s\n",
				leg.From.ID(), leg.To.ID(), leg.TravelTime, leg.Days, formatCredits(leg.FuelCost))
		}
	}
	w.Flush()
	return nil
}

func displayCommodities(out io.Writer, world *game.World) {
	producers := make(map[string][]string)
	for _, loc := range world.Galaxy().Locations() {
		for _, id := range loc.ProducedCommodities() {
			producers[id] = append(producers[id], loc.ID())
		}
	}

	fmt.Fprintf(out, "\nCOMMODITIES (%d)\n", world.Catalog().Len())
	fmt.Fprintln(out, rule)

	w := newTable(out)
	fmt.Fprintln(w, "ID\tName\tBase Price\tVolatility\tProduced At")
	fmt.Fprintln(w, "──\t────\t──────────\t──────────\t───────────")
	for _, c := range world.Catalog().All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\t%s\n",
			c.ID(),
			c.Name(),
			formatCredits(c.BasePrice()),
			c.Volatility()*100,
			joinOrDash(producers[c.ID()]),
		)
	}
	w.Flush()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
