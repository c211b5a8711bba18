package runner

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rshade/vpnmenu/internal/logging"
)

// DefaultTimeout bounds a client call when neither the caller nor the
// runner configuration supplies one.
const DefaultTimeout = 10 * time.Second

// defaultWaitDelay bounds how long a killed child may hold its output pipes.
const defaultWaitDelay = 2 * time.Second

// Status classifies how a client invocation ended.
type Status int

const (
	// StatusSuccess means the client exited with code 0.
	StatusSuccess Status = iota
	// StatusFailure means the client exited non-zero or failed mid-run.
	StatusFailure
	// StatusTimeout means the client was killed after exceeding its bound.
	StatusTimeout
	// StatusNotFound means the executable could not be located or started.
	StatusNotFound
	// StatusCancelled means the caller's context was cancelled.
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusTimeout:
		return "timeout"
	case StatusNotFound:
		return "not_found"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s Status) sentinel() error {
	switch s {
	case StatusNotFound:
		return ErrNotFound
	case StatusTimeout:
		return ErrTimeout
	case StatusCancelled:
		return ErrCancelled
	default:
		return ErrFailed
	}
}

// Result is the outcome of a single client invocation. It is consumed
// immediately by the caller and never stored.
type Result struct {
	Command  string
	Args     []string
	Status   Status
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Timeout  time.Duration
	Cause    error
}

// OK reports whether the client exited successfully.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Output returns trimmed stdout, falling back to stderr when stdout is empty.
func (r Result) Output() string {
	if out := strings.TrimSpace(r.Stdout); out != "" {
		return out
	}
	return strings.TrimSpace(r.Stderr)
}

// Err converts a non-successful result into an *Error; nil on success.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	detail := strings.TrimSpace(r.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(r.Stdout)
	}
	return &Error{
		Status:   r.Status,
		Command:  r.Command,
		Args:     r.Args,
		ExitCode: r.ExitCode,
		Detail:   detail,
		Timeout:  r.Timeout,
		Cause:    r.Cause,
	}
}

// CommandRunner executes an external command and returns its stdout, stderr, and error.
// This interface enables testing without spawning real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// execRunner is the default CommandRunner that uses exec.CommandContext.
type execRunner struct {
	waitDelay time.Duration
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	cmd.WaitDelay = r.waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// NewExecRunner returns the CommandRunner backed by os/exec. Cancelling the
// context kills the child and Wait reaps it; output pipes are abandoned
// after waitDelay so a lingering grandchild cannot block the caller.
func NewExecRunner(waitDelay time.Duration) CommandRunner {
	if waitDelay <= 0 {
		waitDelay = defaultWaitDelay
	}
	return &execRunner{waitDelay: waitDelay}
}

// Runner launches the configured client binary.
type Runner struct {
	// Binary is the client executable name or path.
	Binary string
	// Timeout is the default bound applied when Run is given none.
	Timeout time.Duration
	// Exec performs the actual process launch.
	Exec CommandRunner
	// LookPath resolves Binary before launch.
	LookPath func(string) (string, error)
}

// New creates a Runner for binary using os/exec.
func New(binary string, timeout time.Duration) *Runner {
	return &Runner{
		Binary:   binary,
		Timeout:  timeout,
		Exec:     NewExecRunner(defaultWaitDelay),
		LookPath: exec.LookPath,
	}
}

func (r *Runner) effectiveTimeout(timeout time.Duration) time.Duration {
	if timeout > 0 {
		return timeout
	}
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultTimeout
}

// Run invokes the client with args, waiting at most timeout (or the
// runner default when timeout <= 0). Exactly one child process is spawned
// unless the executable cannot be resolved, in which case none is.
func (r *Runner) Run(ctx context.Context, args []string, timeout time.Duration) Result {
	log := logging.FromContext(ctx)
	timeout = r.effectiveTimeout(timeout)

	res := Result{
		Command: r.Binary,
		Args:    append([]string(nil), args...),
		Timeout: timeout,
	}

	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath(r.Binary); err != nil {
		res.Status = StatusNotFound
		res.ExitCode = -1
		res.Cause = err
		log.Warn().
			Ctx(ctx).
			Str("component", "runner").
			Str("binary", r.Binary).
			Err(err).
			Msg("client executable not found")
		return res
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.Debug().
		Ctx(ctx).
		Str("component", "runner").
		Str("binary", r.Binary).
		Strs("args", args).
		Dur("timeout", timeout).
		Msg("running client command")

	execer := r.Exec
	if execer == nil {
		execer = NewExecRunner(defaultWaitDelay)
	}

	start := time.Now()
	stdout, stderr, err := execer.Run(runCtx, r.Binary, args...)
	res.Duration = time.Since(start)
	res.Stdout = string(stdout)
	res.Stderr = string(stderr)

	classify(ctx, runCtx, &res, err)

	event := log.Debug()
	if !res.OK() {
		event = log.Warn()
	}
	event.
		Ctx(ctx).
		Str("component", "runner").
		Strs("args", args).
		Str("status", res.Status.String()).
		Int("exit_code", res.ExitCode).
		Dur("duration", res.Duration).
		Msg("client command finished")

	return res
}

// classify fills in Status and ExitCode. Context state is checked before
// the error itself because a killed child also reports an exit error.
func classify(parent, runCtx context.Context, res *Result, err error) {
	switch {
	case err == nil:
		res.Status = StatusSuccess
		res.ExitCode = 0
	case parent.Err() != nil:
		res.Status = StatusCancelled
		res.ExitCode = -1
		res.Cause = parent.Err()
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.Status = StatusTimeout
		res.ExitCode = -1
		res.Cause = runCtx.Err()
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		res.Status = StatusNotFound
		res.ExitCode = -1
		res.Cause = err
	default:
		res.Status = StatusFailure
		res.ExitCode = -1
		res.Cause = err
		var coded interface{ ExitCode() int }
		if errors.As(err, &coded) {
			res.ExitCode = coded.ExitCode()
		}
	}
}
