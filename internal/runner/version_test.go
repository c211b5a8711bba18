package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{name: "nordvpn banner", output: "NordVPN Version 3.17.2\n", want: "3.17.2"},
		{name: "two components", output: "client 4.1", want: "4.1.0"},
		{name: "prerelease", output: "v3.18.0-beta.1", want: "3.18.0-beta.1"},
		{name: "no version", output: "command not understood", wantErr: true},
		{name: "empty", output: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestCheckInstalled_Accepts(t *testing.T) {
	m := &mockRunner{stdout: []byte("NordVPN Version 3.17.2\n")}
	r := newMockRunner(m)

	v, err := r.CheckInstalled(context.Background(), CheckOptions{
		Args:       []string{"--version"},
		MinVersion: "3.0.0",
	})

	require.NoError(t, err)
	assert.Equal(t, "3.17.2", v.String())
	assert.Equal(t, []string{"--version"}, m.lastArgs)
}

func TestCheckInstalled_TooOld(t *testing.T) {
	m := &mockRunner{stdout: []byte("NordVPN Version 2.1.0\n")}

	_, err := newMockRunner(m).CheckInstalled(context.Background(), CheckOptions{
		Args:       []string{"--version"},
		MinVersion: "3.0.0",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
	assert.Contains(t, err.Error(), "2.1.0")
}

func TestCheckInstalled_UnparseableIsTolerated(t *testing.T) {
	m := &mockRunner{stdout: []byte("hello\n")}

	v, err := newMockRunner(m).CheckInstalled(context.Background(), CheckOptions{
		Args:       []string{"--version"},
		MinVersion: "3.0.0",
	})

	require.NoError(t, err)
	assert.Equal(t, "unknown", v.String())
	assert.Equal(t, "hello", v.Raw)
}

func TestCheckInstalled_NonZeroExitIsTolerated(t *testing.T) {
	m := &mockRunner{err: exitError{code: 64}}

	v, err := newMockRunner(m).CheckInstalled(context.Background(), CheckOptions{Args: []string{"--version"}})

	require.NoError(t, err)
	assert.Nil(t, v.Semver)
}

func TestCheckInstalled_NotFoundIsFatal(t *testing.T) {
	r := &Runner{
		Binary:   "nordvpn",
		Exec:     &mockRunner{},
		LookPath: func(string) (string, error) { return "", assert.AnError },
	}

	_, err := r.CheckInstalled(context.Background(), CheckOptions{Args: []string{"--version"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckInstalled_TimeoutIsFatal(t *testing.T) {
	m := &mockRunner{block: true}

	_, err := newMockRunner(m).CheckInstalled(context.Background(), CheckOptions{
		Args:    []string{"--version"},
		Timeout: 10 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCheckInstalled_InvalidMinimum(t *testing.T) {
	m := &mockRunner{stdout: []byte("3.17.2")}

	_, err := newMockRunner(m).CheckInstalled(context.Background(), CheckOptions{MinVersion: "not-a-version"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid minimum version")
}
