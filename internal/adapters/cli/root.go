package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tradewinds",
		Short: "TradeWinds - a turn-based interstellar trading game",
		Long: `TradeWinds puts you in command of a cargo ship in a small galaxy of stations,
colonies and outposts. Buy low, sell high, pay for fuel, build a business and
let your factories earn while you travel.

Examples:
  tradewinds play --name Ripley --ship Nostromo
  tradewinds galaxy locations
  tradewinds galaxy routes earth_station
  tradewinds galaxy commodities
  tradewinds --db tradewinds.db ledger sessions
  tradewinds --db tradewinds.db ledger pnl --session <session-id>
  tradewinds config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ., ./configs, /etc/tradewinds)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"SQLite file for the ledger and price history (overrides database settings)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewGalaxyCommand())
	rootCmd.AddCommand(NewMarketCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
