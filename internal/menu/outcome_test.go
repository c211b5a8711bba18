package menu

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/vpnmenu/internal/runner"
)

var testHints = Hints{
	Binary:       "nordvpn",
	LoginCommand: "nordvpn login",
	InstallURL:   "https://example.com/install",
}

func failure(stderr, stdout string) runner.Result {
	return runner.Result{Status: runner.StatusFailure, ExitCode: 1, Stderr: stderr, Stdout: stdout}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		res     runner.Result
		kind    Kind
		tip     string
		message string
		detail  string
	}{
		{
			name:    "success",
			res:     runner.Result{Status: runner.StatusSuccess, Stdout: "You are connected to Germany #123\n"},
			kind:    KindSuccess,
			message: "Connect completed.",
			detail:  "You are connected to Germany #123",
		},
		{
			name: "not logged in",
			res:  failure("You are not logged in.", ""),
			kind: KindTip,
			tip:  "nordvpn login",
		},
		{
			name: "not logged in on stdout",
			res:  failure("", "Please log in first."),
			kind: KindTip,
			tip:  "nordvpn login",
		},
		{
			name: "already connected",
			res:  failure("", "You are already connected to NordVPN."),
			kind: KindTip,
			tip:  "already connected",
		},
		{
			name: "permission",
			res:  failure("Permission denied accessing /run/nordvpn/nordvpnd.sock", ""),
			kind: KindTip,
			tip:  "nordvpn' group",
		},
		{
			name: "daemon",
			res:  failure("Cannot reach System Daemon.", ""),
			kind: KindTip,
			tip:  "systemctl start nordvpnd",
		},
		{
			name: "network",
			res:  failure("Please check your internet connection and try again.", ""),
			kind: KindTip,
			tip:  "internet connection",
		},
		{
			name:    "unknown failure",
			res:     runner.Result{Status: runner.StatusFailure, ExitCode: 7, Stderr: "Something odd happened"},
			kind:    KindFailure,
			message: "Connect failed (exit code 7).",
			detail:  "Something odd happened",
		},
		{
			name: "not found",
			res:  runner.Result{Status: runner.StatusNotFound},
			kind: KindTip,
			tip:  "https://example.com/install",
		},
		{
			name:    "timeout",
			res:     runner.Result{Status: runner.StatusTimeout, Timeout: 10 * time.Second},
			kind:    KindTip,
			message: "Connect did not finish within 10s.",
			tip:     "network",
		},
		{
			name:    "cancelled",
			res:     runner.Result{Status: runner.StatusCancelled},
			kind:    KindCancelled,
			message: "Connect cancelled.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("Connect", tt.res, testHints)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, "Connect", got.Action)
			if tt.tip != "" {
				assert.Contains(t, got.Tip, tt.tip)
			}
			if tt.message != "" {
				assert.Equal(t, tt.message, got.Message)
			}
			if tt.detail != "" {
				assert.Equal(t, tt.detail, got.Detail)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	t.Run("runner error keeps its status", func(t *testing.T) {
		err := runner.Result{Status: runner.StatusNotFound, Command: "nordvpn"}.Err()
		got := ClassifyError("Fetching", err, testHints)
		assert.Equal(t, KindTip, got.Kind)
		assert.Contains(t, got.Tip, "PATH")
	})

	t.Run("wrapped runner error", func(t *testing.T) {
		inner := failure("You are not logged in.", "").Err()
		got := ClassifyError("Fetching", errors.Join(errors.New("fetching countries"), inner), testHints)
		assert.Equal(t, KindTip, got.Kind)
		assert.Contains(t, got.Tip, "nordvpn login")
	})

	t.Run("parse error", func(t *testing.T) {
		got := ClassifyError("Fetching", runner.ParseError("bad token"), testHints)
		assert.Equal(t, KindFailure, got.Kind)
		assert.Contains(t, got.Detail, "bad token")
	})

	t.Run("other error", func(t *testing.T) {
		got := ClassifyError("Fetching", errors.New("boom"), testHints)
		assert.Equal(t, KindFailure, got.Kind)
		assert.Equal(t, "Fetching failed.", got.Message)
	})
}

func TestKindAndScreenStrings(t *testing.T) {
	assert.Equal(t, "tip", KindTip.String())
	assert.Equal(t, "unknown", Kind(9).String())
	assert.Equal(t, "group_select", ScreenGroupSelect.String())
	assert.True(t, ScreenCountrySelect.Selecting())
	assert.False(t, ScreenAutoConnect.Selecting())
}
