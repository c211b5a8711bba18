package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vpnmenu/internal/cli"
	"github.com/rshade/vpnmenu/internal/config"
)

// fakeExec answers client commands by their first argument.
type fakeExec struct {
	stdout map[string]string
	calls  [][]string
}

func (f *fakeExec) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, args)
	key := ""
	if len(args) > 0 {
		key = args[0]
	}
	return []byte(f.stdout[key]), nil, nil
}

func newFakeExec() *fakeExec {
	return &fakeExec{stdout: map[string]string{
		"--version":  "NordVPN Version 3.17.2\n",
		"status":     "Status: Connected\nCountry: Germany\n",
		"countries":  "Germany, France\nUnited_States\n",
		"groups":     "P2P\nEurope\nDouble_VPN\n",
		"connect":    "You are connected to Germany #123\n",
		"disconnect": "You are disconnected from NordVPN.\n",
		"account":    "Account Information:\nEmail Address: user@example.com\n",
		"set":        "Auto-connect is set to 'enabled' successfully.\n",
	}}
}

func found(string) (string, error) { return "/usr/bin/nordvpn", nil }

// lineReader replays lines, then reports io.EOF.
type lineReader struct {
	lines []string
}

func (r *lineReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *lineReader) SetPrompt(string) {}
func (r *lineReader) Close() error     { return nil }

type testEnv struct {
	exec   *fakeExec
	out    *bytes.Buffer
	errOut *bytes.Buffer
	home   string
	env    map[string]string
}

func setupRootTest(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	return &testEnv{
		exec:   newFakeExec(),
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		home:   home,
		env:    map[string]string{},
	}
}

func (e *testEnv) lookupEnv(key string) (string, bool) {
	v, ok := e.env[key]
	return v, ok
}

func (e *testEnv) command(lookPath func(string) (string, error), input []string, args ...string) *cobra.Command {
	cmd := cli.NewRootCmdWithDeps("test", cli.Deps{
		LookupEnv: e.lookupEnv,
		Exec:      e.exec,
		LookPath:  lookPath,
		Reader:    &lineReader{lines: input},
		Signals:   make(chan os.Signal),
		Out:       e.out,
	})
	cmd.SetOut(e.out)
	cmd.SetErr(e.errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	return cmd
}

func (e *testEnv) writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(e.home, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var startupErr *cli.StartupError
	require.ErrorAs(t, err, &startupErr)
	return startupErr.ExitCode
}

func TestRoot_RunsMenuUntilExit(t *testing.T) {
	env := setupRootTest(t)
	cmd := env.command(found, []string{"6", "", "0"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	out := env.out.String()
	assert.Contains(t, out, "NordVPN Menu")
	assert.Contains(t, out, "Status: Connected")
	assert.Contains(t, out, "Exiting...")
	assert.Equal(t, []string{"--version"}, env.exec.calls[0])
	assert.Equal(t, []string{"status"}, env.exec.calls[1])
	assert.Contains(t, env.errOut.String(), "Logging to")
	logData, err := os.ReadFile(filepath.Join(env.home, "vpnmenu.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"commit":"unknown"`)
	assert.Contains(t, string(logData), `"build_date":"unknown"`)
}

func TestRoot_GroupListExcludesRegions(t *testing.T) {
	env := setupRootTest(t)
	cmd := env.command(found, []string{"3", "0", "0"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	out := env.out.String()
	assert.Contains(t, out, "1. P2P")
	assert.Contains(t, out, "2. Double VPN")
	assert.NotContains(t, out, "Europe")
}

func TestRoot_MissingClient(t *testing.T) {
	env := setupRootTest(t)
	cmd := env.command(func(string) (string, error) { return "", exec.ErrNotFound }, nil)

	err := cmd.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, exitCode(t, err))
	assert.Contains(t, env.errOut.String(), "'nordvpn' was not found")
	assert.Contains(t, env.errOut.String(), config.DefaultInstallURL)
	assert.Empty(t, env.exec.calls, "nothing is spawned when the binary is missing")
	assert.NotContains(t, env.out.String(), "NordVPN Menu")
}

func TestRoot_UnsupportedVersion(t *testing.T) {
	env := setupRootTest(t)
	path := env.writeConfig(t, "client:\n  min_version: 4.0.0\n")
	cmd := env.command(found, nil, "--config", path)

	err := cmd.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Equal(t, cli.ExitGeneric, exitCode(t, err))
	assert.Contains(t, env.errOut.String(), "Upgrade the NordVPN client")
}

func TestRoot_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		args []string
		env  map[string]string
	}{
		{name: "unknown key", body: "client:\n  binray: nordvpn\n"},
		{name: "ttl out of bounds", body: "cache:\n  ttl: 48h\n"},
		{name: "connect without target", body: "client:\n  commands:\n    connect: [connect]\n"},
		{name: "bad timeout flag", args: []string{"--timeout", "soon"}},
		{name: "bad cache ttl flag", args: []string{"--cache-ttl=-5"}},
		{name: "bad env timeout", env: map[string]string{config.EnvTimeout: "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRootTest(t)
			for k, v := range tt.env {
				env.env[k] = v
			}
			args := tt.args
			if tt.body != "" {
				args = append(args, "--config", env.writeConfig(t, tt.body))
			}
			cmd := env.command(found, nil, args...)

			err := cmd.ExecuteContext(context.Background())

			require.Error(t, err)
			assert.Equal(t, cli.ExitConfig, exitCode(t, err))
			assert.Contains(t, env.errOut.String(), "vpnmenu config init --force")
			assert.Empty(t, env.exec.calls)
		})
	}
}

func TestRoot_BinaryFlagOverridesEnvAndFile(t *testing.T) {
	env := setupRootTest(t)
	env.env[config.EnvBinary] = "/from/env"
	path := env.writeConfig(t, "client:\n  binary: /from/file\n")

	var looked []string
	lookPath := func(bin string) (string, error) {
		looked = append(looked, bin)
		return bin, nil
	}
	cmd := env.command(lookPath, []string{"0"}, "--config", path, "--binary", "/from/flag")

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.NotEmpty(t, looked)
	assert.Equal(t, "/from/flag", looked[0])
}

func TestRoot_Version(t *testing.T) {
	env := setupRootTest(t)
	cmd := env.command(found, nil, "--version")

	require.NoError(t, cmd.Execute())
	assert.Contains(t, env.out.String(), "test")
}

func TestStartupError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &cli.StartupError{ExitCode: 2, Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "boom", err.Error())
}
