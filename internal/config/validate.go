package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/rshade/vpnmenu/internal/cache"
	"github.com/rshade/vpnmenu/internal/logging"
	"github.com/rshade/vpnmenu/internal/pagination"
)

// Limits on configurable values.
const (
	MinTimeout          = time.Second
	MaxTimeout          = 5 * time.Minute
	MinColumnsThreshold = 2
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ParseDuration accepts a Go duration ("10s") or a bare number of seconds ("10").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}

// Validate reports every problem found, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Client.Binary) == "" {
		errs = append(errs, errors.New("client.binary must not be empty"))
	}
	if c.Client.Timeout < MinTimeout || c.Client.Timeout > MaxTimeout {
		errs = append(errs, fmt.Errorf("client.timeout must be between %s and %s, got %s",
			MinTimeout, MaxTimeout, c.Client.Timeout))
	}
	if c.Client.CheckTimeout < MinTimeout || c.Client.CheckTimeout > MaxTimeout {
		errs = append(errs, fmt.Errorf("client.check_timeout must be between %s and %s, got %s",
			MinTimeout, MaxTimeout, c.Client.CheckTimeout))
	}
	if c.Client.MinVersion != "" {
		if _, err := semver.NewVersion(c.Client.MinVersion); err != nil {
			errs = append(errs, fmt.Errorf("client.min_version: %w", err))
		}
	}
	if err := c.Client.Commands.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("client.commands: %w", err))
	}

	if err := cache.ValidateTTL(c.Cache.TTL); err != nil {
		errs = append(errs, fmt.Errorf("cache.ttl: %w", err))
	}

	if c.Display.ColumnsThreshold < MinColumnsThreshold {
		errs = append(errs, fmt.Errorf("display.columns_threshold must be at least %d, got %d",
			MinColumnsThreshold, c.Display.ColumnsThreshold))
	}
	if _, err := pagination.ParseSortOrder(c.Display.Sort); err != nil {
		errs = append(errs, fmt.Errorf("display.sort: %w", err))
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be trace, debug, info, warn or error, got %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
