package runner

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/rshade/vpnmenu/internal/logging"
)

// DefaultCheckTimeout bounds the startup probe.
const DefaultCheckTimeout = 5 * time.Second

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z.-]+)?`)

// Version is the client version reported by the startup probe.
type Version struct {
	// Raw is the probe output as printed by the client.
	Raw string
	// Semver is nil when the output contained no recognizable version.
	Semver *semver.Version
}

// String returns the parsed version, or "unknown".
func (v Version) String() string {
	if v.Semver == nil {
		return "unknown"
	}
	return v.Semver.String()
}

// CheckOptions controls the startup probe.
type CheckOptions struct {
	// Args is the argument list that makes the client print its version.
	Args []string
	// Timeout bounds the probe; DefaultCheckTimeout when zero.
	Timeout time.Duration
	// MinVersion is an optional semver lower bound.
	MinVersion string
}

// ParseVersion extracts the first semantic version found in output.
func ParseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, ParseError("no version number in %q", firstLine(output))
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, ParseError("invalid version %q: %v", match, err)
	}
	return v, nil
}

// CheckInstalled probes the client once before the menu starts.
//
// A missing executable, a probe that times out, or a cancelled probe is
// fatal. A probe that exits non-zero or prints something unrecognizable
// is logged and tolerated, since the client may still work. When
// MinVersion is set and the parsed version is older, ErrUnsupportedVersion
// is returned.
func (r *Runner) CheckInstalled(ctx context.Context, opts CheckOptions) (Version, error) {
	log := logging.FromContext(ctx)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}

	res := r.Run(ctx, opts.Args, timeout)
	switch res.Status {
	case StatusSuccess:
	case StatusFailure:
		log.Warn().
			Ctx(ctx).
			Str("component", "runner").
			Int("exit_code", res.ExitCode).
			Msg("version probe failed; continuing with unknown version")
		return Version{Raw: res.Output()}, nil
	default:
		return Version{}, res.Err()
	}

	v := Version{Raw: res.Output()}
	parsed, err := ParseVersion(v.Raw)
	if err != nil {
		log.Warn().
			Ctx(ctx).
			Str("component", "runner").
			Err(err).
			Msg("could not parse client version")
		return v, nil
	}
	v.Semver = parsed

	if opts.MinVersion == "" {
		return v, nil
	}
	minimum, err := semver.NewVersion(opts.MinVersion)
	if err != nil {
		return v, fmt.Errorf("invalid minimum version %q: %w", opts.MinVersion, err)
	}
	if parsed.LessThan(minimum) {
		return v, fmt.Errorf("%w: installed %s is older than required %s",
			ErrUnsupportedVersion, parsed, minimum)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "runner").
		Str("version", v.String()).
		Msg("client version accepted")
	return v, nil
}
