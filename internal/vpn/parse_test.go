package vpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vpnmenu/internal/runner"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name:   "comma separated single line",
			output: "Albania, Argentina, Australia\n",
			want:   []string{"Albania", "Argentina", "Australia"},
		},
		{
			name:   "spinner prefix",
			output: "\r-\r  \r\r-\r  \rGermany, France\n",
			want:   []string{"Germany", "France"},
		},
		{
			name:   "tab and space separated columns",
			output: "Albania\t\tArgentina\nUnited_States   United_Kingdom\n",
			want:   []string{"Albania", "Argentina", "United_States", "United_Kingdom"},
		},
		{
			name:   "header and notice lines skipped",
			output: "Available countries:\n* A new version of NordVPN is available! Please update.\nA new version of NordVPN is available! Please update the application.\nItaly, Spain\n",
			want:   []string{"Italy", "Spain"},
		},
		{
			name:   "ansi colour codes stripped",
			output: "\x1b[32mDouble_VPN\x1b[0m, P2P\n",
			want:   []string{"Double_VPN", "P2P"},
		},
		{
			name:   "duplicates and order preserved",
			output: "Zeta, Alpha, Zeta\n",
			want:   []string{"Zeta", "Alpha", "Zeta"},
		},
		{
			name:   "punctuation allowed in names",
			output: "Cote_D'Ivoire, Bosnia_And_Herzegovina\n",
			want:   []string{"Cote_D'Ivoire", "Bosnia_And_Herzegovina"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList(tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseList_Errors(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{name: "empty", output: ""},
		{name: "only whitespace and spinner", output: "\r-\r  \r\n\n"},
		{name: "only a header", output: "Groups:\n"},
		{name: "error message instead of list", output: "Whoops! {\"error\": 1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseList(tt.output)
			require.Error(t, err)
			assert.ErrorIs(t, err, runner.ErrParse)
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"United_States", "United States"},
		{"Double_VPN", "Double VPN"},
		{"P2P", "P2P"},
		{"onion_over_vpn", "Onion Over Vpn"},
		{"Germany", "Germany"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.in))
		})
	}
}

func TestNormalizeTerm(t *testing.T) {
	assert.Equal(t, "united_st", NormalizeTerm("united st"))
	assert.Equal(t, "fin", NormalizeTerm("  fin "))
	assert.Empty(t, NormalizeTerm("   "))
}

func TestExpand(t *testing.T) {
	tmpl := []string{"connect", TargetToken}

	assert.Equal(t, []string{"connect", "Germany"}, Expand(tmpl, "Germany"))
	assert.Equal(t, []string{"connect"}, Expand(tmpl, ""))
	assert.Equal(t, []string{"go", "--to=Spain"}, Expand([]string{"go", "--to={target}"}, "Spain"))
	assert.Equal(t, []string{"go"}, Expand([]string{"go", "--to={target}"}, ""))
}

func TestCommands_Validate(t *testing.T) {
	require.NoError(t, DefaultCommands().Validate())

	cmds := DefaultCommands()
	cmds.Status = nil
	cmds.ConnectGroup = []string{"connect", "--group"}

	err := cmds.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCommands)
	assert.Contains(t, err.Error(), "status: template is empty")
	assert.Contains(t, err.Error(), "connect_group: must contain {target}")
}

func TestCommands_ValidateRequiresTargetToken(t *testing.T) {
	cmds := DefaultCommands()
	cmds.Connect = []string{"connect"}
	cmds.AutoConnectOn = []string{"set", "autoconnect", "on"}

	err := cmds.Validate()
	require.ErrorIs(t, err, ErrInvalidCommands)
	assert.Contains(t, err.Error(), "connect: must contain {target}")
	assert.Contains(t, err.Error(), "autoconnect_on: must contain {target}")

	cmds = DefaultCommands()
	cmds.Connect = []string{"connect", "--country={target}"}
	assert.NoError(t, cmds.Validate())
}
