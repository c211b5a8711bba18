package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/vpnmenu/internal/cache"
)

// Environment variables that override file settings.
const (
	EnvHome      = "VPNMENU_HOME"
	EnvBinary    = "VPNMENU_BINARY"
	EnvTimeout   = "VPNMENU_TIMEOUT"
	EnvCacheTTL  = "VPNMENU_CACHE_TTL"
	EnvLogLevel  = "VPNMENU_LOG_LEVEL"
	EnvLogFormat = "VPNMENU_LOG_FORMAT"
	EnvNoColor   = "NO_COLOR"
)

// ErrConfigExists is returned by Save when the file exists and force is false.
var ErrConfigExists = errors.New("config file already exists")

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// Load reads the configuration at path on top of the defaults. An empty
// path means DefaultConfigPath. A missing file is not an error; a file with
// unknown keys is.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = decode(bytes.NewReader(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		// Empty or comment-only file keeps the defaults.
		return nil
	}
	return err
}

// ApplyEnv overlays environment variables onto c.
func (c *Config) ApplyEnv(lookup LookupEnvFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvBinary); ok && v != "" {
		c.Client.Binary = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Client.Timeout = d
	}
	if v, ok := lookup(EnvCacheTTL); ok && v != "" {
		ttl, err := cache.ParseTTL(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheTTL, err)
		}
		c.Cache.TTL = ttl
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		c.Display.Color = false
	}
	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes c to path, creating parent directories. An existing file is
// only replaced when force is set.
func (c *Config) Save(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	c.path = path
	return nil
}
