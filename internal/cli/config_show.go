package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/vpnmenu/internal/config"
)

// NewConfigShowCmd prints the effective configuration after the config
// file, environment and flags have been applied.
func NewConfigShowCmd(flags *rootFlags, lookup config.LookupEnvFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  # Show what the menu would run with
  vpnmenu config show

  # Show the effect of an override
  VPNMENU_CACHE_TTL=0 vpnmenu config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags, lookup)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cfg.Path() != "" {
				fmt.Fprintf(out, "# %s\n", cfg.Path())
			}
			_, err = out.Write(data)
			return err
		},
	}
}
