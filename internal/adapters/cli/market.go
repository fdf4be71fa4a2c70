package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	tradingQueries "github.com/andrescamacho/tradewinds-go/internal/application/trading/queries"
)

// NewMarketCommand creates the market command with subcommands
func NewMarketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "View recorded market data",
		Long: `Query market prices recorded while playing.

Every market a captain sees is stored in the price history table, so past
sessions can be analysed when the game runs with a file-backed database.

Examples:
  tradewinds --db tradewinds.db market history --session <id> --commodity metals
  tradewinds --db tradewinds.db market history --session <id> --commodity food --location mars_colony`,
	}

	cmd.AddCommand(newMarketHistoryCommand())

	return cmd
}

// newMarketHistoryCommand creates the market history subcommand
func newMarketHistoryCommand() *cobra.Command {
	var (
		sessionID string
		commodity string
		location  string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show price history for a commodity",
		Long: `Show recorded prices for one commodity, newest first, with min/max/average.

Example:
  tradewinds --db tradewinds.db market history --session <id> --commodity metals --limit 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" {
				return fmt.Errorf("--session flag is required")
			}
			if commodity == "" {
				return fmt.Errorf("--commodity flag is required")
			}

			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			result, err := rt.app.Send(context.Background(), &tradingQueries.GetPriceHistoryQuery{
				SessionID:  sessionID,
				Commodity:  commodity,
				LocationID: location,
				Limit:      limit,
			})
			if err != nil {
				return fmt.Errorf("failed to query price history: %w", err)
			}

			renderPriceHistory(cmd.OutOrStdout(), result.(*tradingQueries.GetPriceHistoryResponse))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID [required]")
	cmd.Flags().StringVar(&commodity, "commodity", "", "Commodity id or name [required]")
	cmd.Flags().StringVar(&location, "location", "", "Restrict to one location id")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of observations")

	return cmd
}
