// Package config loads, validates and writes the vpnmenu configuration.
package config

import (
	"time"

	"github.com/rshade/vpnmenu/internal/cache"
	"github.com/rshade/vpnmenu/internal/pagination"
	"github.com/rshade/vpnmenu/internal/runner"
	"github.com/rshade/vpnmenu/internal/vpn"
)

// Default values for a fresh configuration.
const (
	DefaultBinary       = "nordvpn"
	DefaultLoginCommand = "nordvpn login"
	DefaultInstallURL   = "https://support.nordvpn.com/hc/en-us/articles/20196094470929"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
)

// Config is the complete vpnmenu configuration.
type Config struct {
	Client  ClientConfig  `yaml:"client"`
	Cache   CacheConfig   `yaml:"cache"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`

	// path is the file the configuration was loaded from, if any.
	path string
}

// ClientConfig describes how to drive the VPN client.
type ClientConfig struct {
	// Binary is the client executable name or absolute path.
	Binary string `yaml:"binary"`
	// Timeout bounds every client command.
	Timeout time.Duration `yaml:"timeout"`
	// CheckTimeout bounds the startup version probe.
	CheckTimeout time.Duration `yaml:"check_timeout"`
	// MinVersion, when set, rejects older clients at startup.
	MinVersion string `yaml:"min_version,omitempty"`
	// LoginCommand is shown when the client reports a missing login.
	LoginCommand string `yaml:"login_command"`
	// InstallURL is shown when the client cannot be found.
	InstallURL string `yaml:"install_url"`
	// Commands are the argument templates for each operation.
	Commands vpn.Commands `yaml:"commands"`
}

// CacheConfig controls list caching.
type CacheConfig struct {
	// TTL is how long a fetched list is reused; 0 disables reuse.
	TTL time.Duration `yaml:"ttl"`
}

// DisplayConfig controls list presentation.
type DisplayConfig struct {
	ColumnsThreshold int      `yaml:"columns_threshold"`
	Sort             string   `yaml:"sort"`
	ExcludeGroups    []string `yaml:"exclude_groups"`
	Color            bool     `yaml:"color"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Client: ClientConfig{
			Binary:       DefaultBinary,
			Timeout:      runner.DefaultTimeout,
			CheckTimeout: runner.DefaultCheckTimeout,
			LoginCommand: DefaultLoginCommand,
			InstallURL:   DefaultInstallURL,
			Commands:     vpn.DefaultCommands(),
		},
		Cache: CacheConfig{
			TTL: cache.DefaultTTL,
		},
		Display: DisplayConfig{
			ColumnsThreshold: pagination.DefaultColumnsThreshold,
			Sort:             pagination.SortOrderNone,
			ExcludeGroups:    vpn.DefaultExcludedGroups(),
			Color:            true,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Path returns the file this configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}
