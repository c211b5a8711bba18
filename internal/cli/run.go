package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/vpnmenu/internal/cache"
	"github.com/rshade/vpnmenu/internal/config"
	"github.com/rshade/vpnmenu/internal/console"
	"github.com/rshade/vpnmenu/internal/logging"
	"github.com/rshade/vpnmenu/internal/menu"
	"github.com/rshade/vpnmenu/internal/runner"
	"github.com/rshade/vpnmenu/internal/vpn"
)

// runMenu checks the client, then runs the interactive loop until the
// user exits.
func runMenu(cmd *cobra.Command, cfg *config.Config, deps Deps) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	r := runner.New(cfg.Client.Binary, cfg.Client.Timeout)
	if deps.Exec != nil {
		r.Exec = deps.Exec
	}
	if deps.LookPath != nil {
		r.LookPath = deps.LookPath
	}

	ver, err := r.CheckInstalled(ctx, runner.CheckOptions{
		Args:       vpn.Expand(cfg.Client.Commands.Version, ""),
		Timeout:    cfg.Client.CheckTimeout,
		MinVersion: cfg.Client.MinVersion,
	})
	if err != nil {
		serr := checkError(err, cfg.Client.Binary, cfg.Client.InstallURL)
		log.Error().
			Ctx(ctx).
			Err(err).
			Int("exit_code", serr.ExitCode).
			Msg("startup check failed")
		printHint(cmd, serr)
		return serr
	}
	log.Info().
		Ctx(ctx).
		Str("binary", cfg.Client.Binary).
		Str("client_version", ver.String()).
		Msg("vpn client available")

	client := vpn.NewClient(r, cfg.Client.Commands,
		vpn.WithExcludedGroups(cfg.Display.ExcludeGroups),
		vpn.WithTimeout(cfg.Client.Timeout),
	)
	lists := cache.New(client.Fetch,
		cache.WithTTL(cfg.Cache.TTL),
		cache.WithLogger(logging.ComponentLogger(logger, "cache")),
	)
	ctrl := menu.NewController(client, lists, menu.Options{
		ColumnsThreshold: cfg.Display.ColumnsThreshold,
		SortOrder:        cfg.Display.Sort,
		Hints: menu.Hints{
			Binary:       cfg.Client.Binary,
			LoginCommand: cfg.Client.LoginCommand,
			InstallURL:   cfg.Client.InstallURL,
		},
	})

	out := deps.Out
	if out == nil {
		out = cmd.OutOrStdout()
	}
	con, err := console.New(ctrl, console.Options{
		Out:         out,
		Reader:      deps.Reader,
		Color:       cfg.Display.Color,
		Signals:     deps.Signals,
		DisplayName: vpn.DisplayName,
	})
	if err != nil {
		return err
	}

	err = con.Run(ctx)

	stats := lists.Stats()
	log.Info().
		Ctx(ctx).
		Int("cache_hits", stats.Hits).
		Int("cache_misses", stats.Misses).
		Int("cache_fetch_errors", stats.FetchErrors).
		Int("cache_stale_served", stats.StaleServed).
		Msg("session ended")
	return err
}
