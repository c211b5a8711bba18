package runner

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for structured error handling across the client integration.
var (
	// ErrNotFound indicates the client executable is missing or cannot be started.
	ErrNotFound = errors.New("vpn client executable not found")

	// ErrTimeout indicates the client did not finish within its time bound.
	ErrTimeout = errors.New("vpn client command timed out")

	// ErrFailed indicates the client exited with a non-zero status.
	ErrFailed = errors.New("vpn client command failed")

	// ErrCancelled indicates the caller aborted the command (e.g. Ctrl+C).
	ErrCancelled = errors.New("vpn client command cancelled")

	// ErrParse indicates the client produced output of an unexpected shape.
	ErrParse = errors.New("unexpected vpn client output")

	// ErrUnsupportedVersion indicates the installed client is older than required.
	ErrUnsupportedVersion = errors.New("vpn client version not supported")
)

// Error describes a non-successful Result. It unwraps to the sentinel that
// matches its Status, so callers can use errors.Is without inspecting fields.
type Error struct {
	Status   Status
	Command  string
	Args     []string
	ExitCode int
	Detail   string
	Timeout  time.Duration
	Cause    error
}

func (e *Error) Error() string {
	cmdline := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	switch e.Status {
	case StatusNotFound:
		return fmt.Sprintf("%s: %s", ErrNotFound, e.Command)
	case StatusTimeout:
		return fmt.Sprintf("%s after %s: %s", ErrTimeout, e.Timeout, cmdline)
	case StatusCancelled:
		return fmt.Sprintf("%s: %s", ErrCancelled, cmdline)
	default:
		msg := fmt.Sprintf("%s (exit %d): %s", ErrFailed, e.ExitCode, cmdline)
		if e.Detail != "" {
			msg += ": " + firstLine(e.Detail)
		}
		return msg
	}
}

// Unwrap exposes both the status sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.Status.sentinel()}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// ParseError wraps ErrParse with a description of what was wrong.
func ParseError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
