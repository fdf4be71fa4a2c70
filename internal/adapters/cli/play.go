package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/config"
)

// NewPlayCommand creates the interactive play command
func NewPlayCommand() *cobra.Command {
	var (
		name string
		ship string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game",
		Long: `Start a new game and read commands from standard input.

The captain and ship names come from --name and --ship, then from the
defaults saved with 'tradewinds config set-captain'.

Type 'help' inside the game for the list of commands. The session id is
printed on exit so the ledger can be inspected afterwards when --db is set.

Examples:
  tradewinds play
  tradewinds play --name Ripley --ship Nostromo
  tradewinds --db tradewinds.db play`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				rt.logger.Debug("user config unavailable", zap.Error(err))
				handler = nil
			}
			captain := resolveCaptain(handler, name, ship)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			game, err := StartGame(ctx, rt.app, captain.PlayerName, captain.ShipName, out, rt.logger)
			if err != nil {
				return err
			}
			if err := game.Run(ctx, cmd.InOrStdin()); err != nil {
				return err
			}

			fmt.Fprintf(out, "Session: %s\n", game.SessionID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Captain name")
	cmd.Flags().StringVar(&ship, "ship", "", "Ship name")

	return cmd
}
