package config

import (
	"github.com/rshade/vpnmenu/internal/logging"
)

// ToLoggingConfig converts config.LoggingConfig to logging.Config for use with
// the internal/logging package.
//
// Logs go to a file so they never interleave with the menu. When File is
// empty, defaultFile is used; debug sends output to stderr in console
// format instead.
func (lc *LoggingConfig) ToLoggingConfig(defaultFile string, debug bool) logging.Config {
	if debug {
		return logging.Config{
			Level:  "debug",
			Format: logging.FormatConsole,
			Output: logging.OutputStderr,
			Caller: true,
		}
	}

	file := lc.File
	if file == "" {
		file = defaultFile
	}
	output := logging.OutputFile
	if file == "" {
		output = logging.OutputStderr
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   file,
	}
}
