package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/vpnmenu/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd(flags *rootFlags, lookup config.LookupEnvFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file together with environment and flag
overrides for syntax and semantic correctness.

This includes:
- Unknown or misspelled keys
- Timeouts and cache TTL bounds
- Command templates for every client operation
- Display and logging settings`,
		Example: `  # Validate current configuration
  vpnmenu config validate

  # Validate a specific file
  vpnmenu config validate --config ./config.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags, lookup)
			if err != nil {
				return err
			}
			source := cfg.Path()
			if source == "" {
				source = "built-in defaults"
			}
			cmd.Printf("Configuration is valid (%s)\n", source)
			return nil
		},
	}
}
