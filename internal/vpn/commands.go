package vpn

import (
	"errors"
	"fmt"
	"strings"
)

// TargetToken is replaced by the chosen country or group name.
const TargetToken = "{target}"

// ErrInvalidCommands indicates a malformed command template set.
var ErrInvalidCommands = errors.New("invalid client command templates")

// Commands holds the argument templates for every client operation.
type Commands struct {
	Version        []string `yaml:"version"`
	Connect        []string `yaml:"connect"`
	ConnectGroup   []string `yaml:"connect_group"`
	Disconnect     []string `yaml:"disconnect"`
	Status         []string `yaml:"status"`
	Countries      []string `yaml:"countries"`
	Groups         []string `yaml:"groups"`
	AutoConnectOn  []string `yaml:"autoconnect_on"`
	AutoConnectOff []string `yaml:"autoconnect_off"`
	Account        []string `yaml:"account"`
}

// DefaultCommands returns the templates understood by the nordvpn CLI.
func DefaultCommands() Commands {
	return Commands{
		Version:        []string{"--version"},
		Connect:        []string{"connect", TargetToken},
		ConnectGroup:   []string{"connect", "--group", TargetToken},
		Disconnect:     []string{"disconnect"},
		Status:         []string{"status"},
		Countries:      []string{"countries"},
		Groups:         []string{"groups"},
		AutoConnectOn:  []string{"set", "autoconnect", "on", TargetToken},
		AutoConnectOff: []string{"set", "autoconnect", "off"},
		Account:        []string{"account"},
	}
}

// Validate checks that every template is present and that templates which
// require a target carry the token.
func (c Commands) Validate() error {
	var errs []error
	for name, tmpl := range c.named() {
		if len(tmpl) == 0 {
			errs = append(errs, fmt.Errorf("%s: template is empty", name))
		}
	}
	// These operations carry the chosen country or group.
	for _, t := range []struct {
		name string
		tmpl []string
	}{
		{"connect", c.Connect},
		{"connect_group", c.ConnectGroup},
		{"autoconnect_on", c.AutoConnectOn},
	} {
		if len(t.tmpl) > 0 && !hasTarget(t.tmpl) {
			errs = append(errs, fmt.Errorf("%s: must contain %s", t.name, TargetToken))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCommands, errors.Join(errs...))
}

func (c Commands) named() map[string][]string {
	return map[string][]string{
		"version":         c.Version,
		"connect":         c.Connect,
		"connect_group":   c.ConnectGroup,
		"disconnect":      c.Disconnect,
		"status":          c.Status,
		"countries":       c.Countries,
		"groups":          c.Groups,
		"autoconnect_on":  c.AutoConnectOn,
		"autoconnect_off": c.AutoConnectOff,
		"account":         c.Account,
	}
}

func hasTarget(tmpl []string) bool {
	for _, arg := range tmpl {
		if strings.Contains(arg, TargetToken) {
			return true
		}
	}
	return false
}

// Expand substitutes target into tmpl. With an empty target, arguments
// carrying the token are dropped, so "connect {target}" becomes "connect".
func Expand(tmpl []string, target string) []string {
	args := make([]string, 0, len(tmpl))
	for _, arg := range tmpl {
		if !strings.Contains(arg, TargetToken) {
			args = append(args, arg)
			continue
		}
		if target == "" {
			continue
		}
		args = append(args, strings.ReplaceAll(arg, TargetToken, target))
	}
	return args
}
