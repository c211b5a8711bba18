package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/vpnmenu/internal/config"
	"github.com/rshade/vpnmenu/internal/logging"
	"github.com/rshade/vpnmenu/pkg/version"
)

// setupLogging builds the session logger from cfg and stores it, with a
// fresh trace ID, in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config, debug bool) logging.LogPathResult {
	// Without a home directory the logger falls back to stderr.
	defaultFile, _ := config.DefaultLogPath()

	result := logging.NewLoggerWithPath(cfg.Logging.ToLoggingConfig(defaultFile, debug))
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().
		Ctx(ctx).
		Str("command", cmd.Name()).
		Str("version", version.GetVersion()).
		Str("commit", version.GetGitCommit()).
		Str("build_date", version.GetBuildDate()).
		Str("config", cfg.Path()).
		Bool("log_to_file", result.UsingFile).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
