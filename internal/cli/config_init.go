package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/sharesout/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $SHARESOUT_HOME/config.yaml (default ~/.sharesout/config.yaml)
holding the built-in defaults.`,
		Example: `  # Create configuration
  sharesout config init

  # Create configuration, overwriting existing
  sharesout config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	cfg := config.NewDefault()
	dir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}
	cfg.SetConfigPath(config.FilePath(dir))

	// Check if config already exists and force isn't set
	if !force {
		if _, statErr := os.Stat(cfg.ConfigPath()); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), statErr)
		}
	}

	if err = config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
