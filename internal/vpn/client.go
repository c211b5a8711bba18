package vpn

import (
	"context"
	"fmt"
	"time"

	"github.com/rshade/vpnmenu/internal/cache"
	"github.com/rshade/vpnmenu/internal/logging"
	"github.com/rshade/vpnmenu/internal/runner"
)

// DefaultExcludedGroups are region groups that nordvpn lists alongside
// server groups but which are not useful connection targets.
func DefaultExcludedGroups() []string {
	return []string{
		"Africa_The_Middle_East_And_India",
		"Asia_Pacific",
		"Europe",
		"The_Americas",
	}
}

// Runner is the subset of *runner.Runner the client needs.
type Runner interface {
	Run(ctx context.Context, args []string, timeout time.Duration) runner.Result
}

// Client issues nordvpn commands through a Runner.
type Client struct {
	run      Runner
	cmds     Commands
	timeout  time.Duration
	excluded map[string]struct{}
}

// Option configures a Client.
type Option func(*Client)

// WithExcludedGroups drops the named groups from Groups results.
func WithExcludedGroups(groups []string) Option {
	return func(c *Client) {
		for _, g := range groups {
			c.excluded[g] = struct{}{}
		}
	}
}

// WithTimeout sets the per-command time bound; the runner default applies when zero.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a Client that expands cmds and runs them via r.
func NewClient(r Runner, cmds Commands, opts ...Option) *Client {
	c := &Client{
		run:      r,
		cmds:     cmds,
		excluded: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) exec(ctx context.Context, tmpl []string, target string) runner.Result {
	return c.run.Run(ctx, Expand(tmpl, target), c.timeout)
}

// execTarget is exec for operations aimed at a country or group. A
// template without the target token would run against the wrong server,
// so it fails without starting the client.
func (c *Client) execTarget(ctx context.Context, name string, tmpl []string, target string) runner.Result {
	if target != "" && !hasTarget(tmpl) {
		err := fmt.Errorf("%w: %s has no %s for %q", ErrInvalidCommands, name, TargetToken, target)
		return runner.Result{
			Args:     Expand(tmpl, target),
			Status:   runner.StatusFailure,
			ExitCode: -1,
			Stderr:   err.Error(),
			Cause:    err,
		}
	}
	return c.exec(ctx, tmpl, target)
}

// QuickConnect connects to the server the client recommends.
func (c *Client) QuickConnect(ctx context.Context) runner.Result {
	return c.exec(ctx, c.cmds.Connect, "")
}

// ConnectCountry connects to a server in country.
func (c *Client) ConnectCountry(ctx context.Context, country string) runner.Result {
	return c.execTarget(ctx, "connect", c.cmds.Connect, country)
}

// ConnectGroup connects to a server in the named group.
func (c *Client) ConnectGroup(ctx context.Context, group string) runner.Result {
	return c.execTarget(ctx, "connect_group", c.cmds.ConnectGroup, group)
}

// Disconnect drops the current VPN connection.
func (c *Client) Disconnect(ctx context.Context) runner.Result {
	return c.exec(ctx, c.cmds.Disconnect, "")
}

// Status reports the current connection state.
func (c *Client) Status(ctx context.Context) runner.Result {
	return c.exec(ctx, c.cmds.Status, "")
}

// Account reports the logged-in account.
func (c *Client) Account(ctx context.Context) runner.Result {
	return c.exec(ctx, c.cmds.Account, "")
}

// AutoConnectOn enables auto-connect, to target when given or to the
// recommended server otherwise.
func (c *Client) AutoConnectOn(ctx context.Context, target string) runner.Result {
	return c.execTarget(ctx, "autoconnect_on", c.cmds.AutoConnectOn, target)
}

// AutoConnectOff disables auto-connect.
func (c *Client) AutoConnectOff(ctx context.Context) runner.Result {
	return c.exec(ctx, c.cmds.AutoConnectOff, "")
}

// Countries lists the countries the client can connect to.
func (c *Client) Countries(ctx context.Context) ([]string, error) {
	return c.list(ctx, c.cmds.Countries)
}

// Groups lists the server groups, minus any excluded ones.
func (c *Client) Groups(ctx context.Context) ([]string, error) {
	names, err := c.list(ctx, c.cmds.Groups)
	if err != nil {
		return nil, err
	}
	kept := names[:0]
	for _, n := range names {
		if _, skip := c.excluded[n]; !skip {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return nil, runner.ParseError("no server groups left after exclusions")
	}
	return kept, nil
}

// Fetch satisfies cache.Fetcher.
func (c *Client) Fetch(ctx context.Context, category cache.Category) ([]string, error) {
	switch category {
	case cache.Countries:
		return c.Countries(ctx)
	case cache.ServerGroups:
		return c.Groups(ctx)
	default:
		return nil, fmt.Errorf("unknown list category %d", int(category))
	}
}

func (c *Client) list(ctx context.Context, tmpl []string) ([]string, error) {
	res := c.exec(ctx, tmpl, "")
	if err := res.Err(); err != nil {
		return nil, err
	}
	names, err := ParseList(res.Stdout)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "vpn").
			Strs("args", res.Args).
			Err(err).
			Msg("could not parse list output")
		return nil, err
	}
	return names, nil
}
