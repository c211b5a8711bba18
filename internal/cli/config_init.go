package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/vpnmenu/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd(flags *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The file is written to --config when given, otherwise to
$VPNMENU_HOME/config.yaml (default ~/.config/vpnmenu/config.yaml).
An existing file is kept unless --force is given or you confirm the
overwrite at an interactive prompt.`,
		Example: `  # Create the default configuration
  vpnmenu config init

  # Replace an existing configuration
  vpnmenu config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}

			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					if !isTerminal(cmd.InOrStdin()) {
						return errors.New("configuration file already exists, use --force to overwrite")
					}
					if !ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), path).Accepted {
						cmd.Println("Configuration left unchanged")
						return nil
					}
					force = true
				}
			}

			if err = config.New().Save(path, force); err != nil {
				return err
			}
			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// configPath returns --config or the default location.
func configPath(flags *rootFlags) (string, error) {
	if flags.configPath != "" {
		return flags.configPath, nil
	}
	return config.DefaultConfigPath()
}
