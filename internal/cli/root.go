package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/sharesout/internal/config"
	"github.com/rshade/sharesout/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the sharesout CLI.
// It applies the --config overlay, wires up logging and trace ids, and registers
// the show, serve, fetch and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "sharesout",
		Short:   "Shares outstanding viewer for SEC filers",
		Long:    "sharesout: Show the smallest and largest shares outstanding a company reported after a fiscal-year cutoff",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
				cfg := config.GetGlobalConfig()
				if err := config.MergeYAML(cfg, overlay); err != nil {
					return fmt.Errorf("loading --config: %w", err)
				}
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file applied on top of the configuration file")
	cmd.AddCommand(NewShowCmd(), NewServeCmd(), NewFetchCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Show the bundled default company
  sharesout show

  # Show Apple Inc. (CIK 320193)
  sharesout show --cik 320193

  # Print the result as JSON
  sharesout show --cik 320193 --output json

  # Serve the page on :8080 (open http://localhost:8080/?CIK=320193)
  sharesout serve

  # Fetch a company and save it as the default dataset
  sharesout fetch --cik 789019 --save data.json

  # Initialize configuration
  sharesout config init

  # Set configuration values
  sharesout config set api.user_agent "Example Research admin@example.com"`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
