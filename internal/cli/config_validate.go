package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/sharesout/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at ~/.sharesout/config.yaml for syntax and semantic correctness.

This includes:
- YAML syntax
- API and relay URLs
- Timeout and cutoff year ranges
- Log format`,
		Example: `  # Validate current configuration
  sharesout config validate

  # Validate and show detailed information
  sharesout config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	relay := cfg.API.RelayURL
	if relay == "" {
		relay = "(none, direct requests)"
	}
	cmd.Printf("  API base URL: %s\n", cfg.API.BaseURL)
	cmd.Printf("  Relay URL: %s\n", relay)
	cmd.Printf("  Cutoff year: %d\n", cfg.Display.CutoffYear)
	cmd.Printf("  Locale: %s\n", cfg.Display.Locale)

	data := cfg.Display.DefaultData
	if data == "" {
		data = "(bundled)"
	}
	cmd.Printf("  Default data: %s\n", data)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
