package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/vpnmenu/internal/cache"
	"github.com/rshade/vpnmenu/internal/config"
	"github.com/rshade/vpnmenu/internal/console"
	"github.com/rshade/vpnmenu/internal/logging"
	"github.com/rshade/vpnmenu/internal/runner"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Deps are the process boundaries the root command touches. Zero values
// mean the real implementation.
type Deps struct {
	LookupEnv config.LookupEnvFunc
	Exec      runner.CommandRunner
	LookPath  func(string) (string, error)
	Reader    console.LineReader
	Signals   <-chan os.Signal
	Out       io.Writer
}

// rootFlags holds the persistent flag values.
type rootFlags struct {
	configPath string
	binary     string
	timeout    string
	cacheTTL   string
	debug      bool
	noColor    bool
}

// NewRootCmd creates the root Cobra command for vpnmenu.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithDeps(ver, Deps{LookupEnv: os.LookupEnv})
}

// NewRootCmdWithDeps creates the root command with explicit dependencies
// for testability.
func NewRootCmdWithDeps(ver string, deps Deps) *cobra.Command {
	if deps.LookupEnv == nil {
		deps.LookupEnv = os.LookupEnv
	}

	var (
		flags     rootFlags
		cfg       *config.Config
		logResult *logging.LogPathResult
	)

	cmd := &cobra.Command{
		Use:   "vpnmenu",
		Short: "Interactive menu for the NordVPN client",
		Long: `vpnmenu wraps the nordvpn command-line client in a numbered menu.

Connect to the fastest server, a country or a server group, manage
auto-connect, and check status without remembering client flags.
Country and group lists are cached for the session.`,
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig(cmd, &flags, deps.LookupEnv)
			if err != nil {
				return err
			}
			cfg = loaded

			result := setupLogging(cmd, cfg, flags.debug)
			logResult = &result
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, cfg, deps)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $VPNMENU_HOME/config.yaml)")
	pf.StringVar(&flags.binary, "binary", "", "VPN client executable (overrides client.binary)")
	pf.StringVar(&flags.timeout, "timeout", "", "per-command timeout, e.g. 10s or 10 (overrides client.timeout)")
	pf.StringVar(&flags.cacheTTL, "cache-ttl", "", "list cache TTL, e.g. 5m or 300; 0 disables caching")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging to stderr")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newConfigCmd(&flags, deps.LookupEnv))
	return cmd
}

const rootCmdExample = `  # Start the menu
  vpnmenu

  # Use a client installed outside PATH with a longer timeout
  vpnmenu --binary /opt/nordvpn/bin/nordvpn --timeout 30s

  # Always fetch fresh country and group lists
  vpnmenu --cache-ttl 0

  # Write the default configuration file
  vpnmenu config init`

// loadConfig resolves the effective configuration and prints the fix-it
// hint when it is unusable.
func loadConfig(cmd *cobra.Command, flags *rootFlags, lookup config.LookupEnvFunc) (*config.Config, error) {
	cfg, err := resolveConfig(cmd, flags, lookup)
	if err != nil {
		printHint(cmd, err)
		return nil, err
	}
	return cfg, nil
}

// resolveConfig applies flags, then environment, then the config file,
// then defaults, in order of precedence.
func resolveConfig(cmd *cobra.Command, flags *rootFlags, lookup config.LookupEnvFunc) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, configError(err)
	}
	if err = cfg.ApplyEnv(lookup); err != nil {
		return nil, configError(err)
	}
	if err = applyFlags(cmd, cfg, flags); err != nil {
		return nil, configError(err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, configError(err)
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *rootFlags) error {
	changed := cmd.Flags().Changed

	if changed("binary") {
		cfg.Client.Binary = flags.binary
	}
	if changed("timeout") {
		d, err := config.ParseDuration(flags.timeout)
		if err != nil {
			return fmt.Errorf("--timeout: %w", err)
		}
		cfg.Client.Timeout = d
	}
	if changed("cache-ttl") {
		ttl, err := cache.ParseTTL(flags.cacheTTL)
		if err != nil {
			return fmt.Errorf("--cache-ttl: %w", err)
		}
		cfg.Cache.TTL = ttl
	}
	if changed("no-color") && flags.noColor {
		cfg.Display.Color = false
	}
	return nil
}

// newConfigCmd creates the config command group. Its subcommands manage
// the file itself, so they skip the root's load and logging setup.
func newConfigCmd(flags *rootFlags, lookup config.LookupEnvFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return nil
		},
	}
	cmd.AddCommand(
		NewConfigInitCmd(flags),
		NewConfigShowCmd(flags, lookup),
		NewConfigValidateCmd(flags, lookup),
	)
	return cmd
}
