package cli

import (
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/config"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show settings and manage the default captain",
		Long: `Settings come from TW_* environment variables (and DATABASE_URL), then
config.yaml, then built-in defaults. The default captain and ship used by
'play' are kept per user in ~/.tradewinds/config.json.

Examples:
  tradewinds config show
  tradewinds config set-captain --name Ripley --ship Nostromo
  tradewinds config clear-captain`,
	}
	cmd.AddCommand(newConfigShowCommand(), newConfigSetCaptainCommand(), newConfigClearCaptainCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings and the default captain",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadRuntimeConfig()
			if err != nil {
				fmt.Fprintf(out, "Config is invalid, showing defaults instead: %v\n\n", err)
				cfg = config.LoadConfigOrDefault(configPath)
			}

			users, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			prefs, err := users.Load()
			if err != nil {
				fmt.Fprintf(out, "Ignoring %s: %v\n\n", users.GetConfigPath(), err)
				prefs = &config.UserConfig{}
			}

			displayConfig(out, cfg, prefs, users.GetConfigPath())
			return nil
		},
	}
}

// configSection is one titled block of the config show output
type configSection struct {
	title string
	rows  [][2]string
}

func displayConfig(out io.Writer, cfg *config.Config, prefs *config.UserConfig, prefsPath string) {
	seed := "random"
	if cfg.Game.Seed != 0 {
		seed = fmt.Sprint(cfg.Game.Seed)
	}
	storage := [2]string{"Path", cfg.Database.Path}
	if cfg.Database.URL != "" {
		storage = [2]string{"URL", maskPassword(cfg.Database.URL)}
	}
	endpoint := "disabled"
	if cfg.Metrics.Enabled {
		endpoint = "http://" + cfg.Metrics.Address() + cfg.Metrics.Path
	}

	sections := []configSection{
		{"Captain", [][2]string{
			{"Name", orNotSet(prefs.DefaultPlayerName)},
			{"Ship", orNotSet(prefs.DefaultShipName)},
			{"Stored in", prefsPath},
		}},
		{"Game", [][2]string{
			{"Starting credits", formatCredits(cfg.Game.StartingCredits)},
			{"Cargo capacity", fmt.Sprint(cfg.Game.CargoCapacity)},
			{"Home", cfg.Game.HomeLocation},
			{"Travel mode", cfg.Game.TravelMode},
			{"Fuel rate", fmt.Sprintf("%.1f credits/day", cfg.Game.FuelRate)},
			{"Seed", seed},
		}},
		{"Business", [][2]string{
			{"Incorporation", formatCredits(cfg.Business.IncorporationCost)},
			{"Max loans", fmt.Sprint(cfg.Business.MaxLoans)},
			{"Min loan", formatCredits(cfg.Business.MinLoan)},
		}},
		{"Ledger database", [][2]string{
			{"Type", cfg.Database.Type},
			storage,
			{"Max connections", fmt.Sprint(cfg.Database.Pool.MaxOpen)},
		}},
		{"Logging", [][2]string{
			{"Level", cfg.Logging.Level},
			{"Format", cfg.Logging.Format},
			{"Output", cfg.Logging.Output},
		}},
		{"Metrics", [][2]string{{"Endpoint", endpoint}}},
	}

	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, section.title)
		w := newTable(out)
		for _, row := range section.rows {
			fmt.Fprintf(w, "  %s:\t%s\n", row[0], row[1])
		}
		w.Flush()
	}
}

func newConfigSetCaptainCommand() *cobra.Command {
	var name, ship string

	cmd := &cobra.Command{
		Use:   "set-captain",
		Short: "Remember the captain and ship names for new games",
		Long: `Store the names 'tradewinds play' uses when --name or --ship is omitted.
A name left out keeps its stored value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := users.SetDefaultCaptain(name, ship); err != nil {
				return err
			}
			prefs, err := users.Load()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ New games start as Captain %s of the %s\n",
				orNotSet(prefs.DefaultPlayerName), orNotSet(prefs.DefaultShipName))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Captain name")
	cmd.Flags().StringVar(&ship, "ship", "", "Ship name")
	cmd.MarkFlagsOneRequired("name", "ship")
	return cmd
}

func newConfigClearCaptainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-captain",
		Short: "Forget the stored captain and ship names",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := users.ClearDefaultCaptain(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Default captain cleared")
			return nil
		},
	}
}

func orNotSet(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

// maskPassword masks passwords in connection strings for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
