package vpn

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vpnmenu/internal/cache"
	"github.com/rshade/vpnmenu/internal/runner"
)

// fakeRunner records calls and replays canned results keyed by the first argument.
type fakeRunner struct {
	results map[string]runner.Result
	calls   [][]string
	timeout time.Duration
}

func (f *fakeRunner) Run(_ context.Context, args []string, timeout time.Duration) runner.Result {
	f.calls = append(f.calls, args)
	f.timeout = timeout
	key := ""
	if len(args) > 0 {
		key = args[0]
	}
	if res, ok := f.results[key]; ok {
		res.Args = args
		return res
	}
	return runner.Result{Args: args, Status: runner.StatusSuccess}
}

func TestClient_ExpandsTemplates(t *testing.T) {
	f := &fakeRunner{}
	c := NewClient(f, DefaultCommands(), WithTimeout(3*time.Second))
	ctx := context.Background()

	c.QuickConnect(ctx)
	c.ConnectCountry(ctx, "Germany")
	c.ConnectGroup(ctx, "P2P")
	c.Disconnect(ctx)
	c.Status(ctx)
	c.Account(ctx)
	c.AutoConnectOn(ctx, "")
	c.AutoConnectOn(ctx, "France")
	c.AutoConnectOff(ctx)

	assert.Equal(t, [][]string{
		{"connect"},
		{"connect", "Germany"},
		{"connect", "--group", "P2P"},
		{"disconnect"},
		{"status"},
		{"account"},
		{"set", "autoconnect", "on"},
		{"set", "autoconnect", "on", "France"},
		{"set", "autoconnect", "off"},
	}, f.calls)
	assert.Equal(t, 3*time.Second, f.timeout)
}

func TestClient_TargetWithoutTokenIsRejected(t *testing.T) {
	cmds := DefaultCommands()
	cmds.Connect = []string{"connect"}
	cmds.AutoConnectOn = []string{"set", "autoconnect", "on"}
	f := &fakeRunner{}
	c := NewClient(f, cmds)
	ctx := context.Background()

	for _, res := range []runner.Result{
		c.ConnectCountry(ctx, "Germany"),
		c.AutoConnectOn(ctx, "Germany"),
	} {
		assert.Equal(t, runner.StatusFailure, res.Status)
		assert.False(t, res.OK())
		require.ErrorIs(t, res.Cause, ErrInvalidCommands)
		assert.Contains(t, res.Stderr, "Germany")
	}
	assert.Empty(t, f.calls, "the client must not run without the chosen target")

	// Without a target the same templates are still usable.
	c.QuickConnect(ctx)
	c.AutoConnectOn(ctx, "")
	assert.Equal(t, [][]string{{"connect"}, {"set", "autoconnect", "on"}}, f.calls)
}

func TestClient_Countries(t *testing.T) {
	f := &fakeRunner{results: map[string]runner.Result{
		"countries": {Status: runner.StatusSuccess, Stdout: "\r-\r  \rGermany, Netherlands\n"},
	}}
	c := NewClient(f, DefaultCommands())

	got, err := c.Countries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Germany", "Netherlands"}, got)
}

func TestClient_GroupsDropsRegions(t *testing.T) {
	f := &fakeRunner{results: map[string]runner.Result{
		"groups": {
			Status: runner.StatusSuccess,
			Stdout: "Africa_The_Middle_East_And_India, Asia_Pacific, Double_VPN, Europe, P2P, The_Americas\n",
		},
	}}
	c := NewClient(f, DefaultCommands(), WithExcludedGroups(DefaultExcludedGroups()))

	got, err := c.Fetch(context.Background(), cache.ServerGroups)

	require.NoError(t, err)
	assert.Equal(t, []string{"Double_VPN", "P2P"}, got)
}

func TestClient_GroupsAllExcluded(t *testing.T) {
	f := &fakeRunner{results: map[string]runner.Result{
		"groups": {Status: runner.StatusSuccess, Stdout: "Europe\n"},
	}}
	c := NewClient(f, DefaultCommands(), WithExcludedGroups(DefaultExcludedGroups()))

	_, err := c.Groups(context.Background())

	assert.ErrorIs(t, err, runner.ErrParse)
}

func TestClient_ListFailurePropagates(t *testing.T) {
	f := &fakeRunner{results: map[string]runner.Result{
		"countries": {Status: runner.StatusFailure, ExitCode: 1, Stdout: "You are not logged in.\n"},
	}}
	c := NewClient(f, DefaultCommands())

	_, err := c.Fetch(context.Background(), cache.Countries)

	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrFailed)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestClient_FetchUnknownCategory(t *testing.T) {
	c := NewClient(&fakeRunner{}, DefaultCommands())
	_, err := c.Fetch(context.Background(), cache.Category(9))
	assert.Error(t, err)
}
