package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/vpnmenu/internal/runner"
)

// Process exit codes.
const (
	ExitGeneric  = 1
	ExitConfig   = 2
	ExitTimeout  = 124
	ExitNotFound = 127
)

// StartupError is returned when the menu cannot start. It carries the exit
// code for main and a hint for the user.
type StartupError struct {
	ExitCode int
	Hint     string
	Err      error
}

func (e *StartupError) Error() string {
	return e.Err.Error()
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// configError wraps a configuration problem.
func configError(err error) *StartupError {
	return &StartupError{
		ExitCode: ExitConfig,
		Hint:     "Fix the configuration or run 'vpnmenu config init --force' to start over.",
		Err:      err,
	}
}

// checkError maps a failed startup probe to an exit code and hint.
func checkError(err error, binary, installURL string) *StartupError {
	switch {
	case errors.Is(err, runner.ErrNotFound):
		return &StartupError{
			ExitCode: ExitNotFound,
			Hint: fmt.Sprintf("'%s' was not found. Install the NordVPN client (%s) "+
				"or set client.binary to its path.", binary, installURL),
			Err: err,
		}
	case errors.Is(err, runner.ErrTimeout):
		return &StartupError{
			ExitCode: ExitTimeout,
			Hint:     fmt.Sprintf("'%s' did not answer in time. Check that the nordvpnd service is running.", binary),
			Err:      err,
		}
	case errors.Is(err, runner.ErrUnsupportedVersion):
		return &StartupError{
			ExitCode: ExitGeneric,
			Hint:     fmt.Sprintf("Upgrade the NordVPN client (%s).", installURL),
			Err:      err,
		}
	default:
		return &StartupError{ExitCode: ExitGeneric, Err: err}
	}
}

// printHint writes the hint of a *StartupError in err, if any, to stderr.
func printHint(cmd *cobra.Command, err error) {
	var serr *StartupError
	if errors.As(err, &serr) && serr.Hint != "" {
		cmd.PrintErrln(serr.Hint)
	}
}
