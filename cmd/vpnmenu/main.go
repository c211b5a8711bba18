// Command vpnmenu is an interactive menu for the NordVPN client.
package main

import (
	"errors"
	"os"

	"github.com/rshade/vpnmenu/internal/cli"
	"github.com/rshade/vpnmenu/pkg/version"
)

func main() {
	if err := run(); err != nil {
		os.Exit(extractExitCode(err))
	}
}

func run() error {
	return cli.NewRootCmd(version.Full()).Execute()
}

// extractExitCode returns the exit code carried by a *cli.StartupError,
// 0 for nil and 1 for any other error.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var startupErr *cli.StartupError
	if errors.As(err, &startupErr) {
		return startupErr.ExitCode
	}
	return cli.ExitGeneric
}
