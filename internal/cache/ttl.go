package cache

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// TTL configuration constants and defaults.
const (
	// DefaultTTL is how long a fetched list is reused.
	DefaultTTL = 5 * time.Minute

	// MinTTL is the smallest non-zero TTL accepted.
	MinTTL = time.Second

	// MaxTTL is the largest TTL accepted.
	MaxTTL = 24 * time.Hour

	// minutesPerHour is used for duration formatting calculations.
	minutesPerHour = 60

	// secondsPerMinute is used for duration formatting calculations.
	secondsPerMinute = 60
)

// ErrInvalidTTL reports a TTL outside the accepted range.
var ErrInvalidTTL = errors.New("cache TTL must be 0 (disabled) or between 1s and 24h")

// ValidateTTL accepts zero (caching disabled) or a value within [MinTTL, MaxTTL].
func ValidateTTL(ttl time.Duration) error {
	if ttl == 0 {
		return nil
	}
	if ttl < MinTTL || ttl > MaxTTL {
		return fmt.Errorf("%w: got %s", ErrInvalidTTL, ttl)
	}
	return nil
}

// ParseTTL parses a TTL string in various formats:
// - Integer seconds: "300".
// - Duration string: "5m", "90s", "1h30m".
func ParseTTL(s string) (time.Duration, error) {
	var ttl time.Duration
	if seconds, err := strconv.Atoi(s); err == nil {
		ttl = time.Duration(seconds) * time.Second
	} else {
		d, parseErr := time.ParseDuration(s)
		if parseErr != nil {
			return 0, fmt.Errorf("invalid TTL format: %w", parseErr)
		}
		ttl = d
	}

	if err := ValidateTTL(ttl); err != nil {
		return 0, err
	}
	return ttl, nil
}

// FormatDuration formats a duration in a human-readable way.
// Examples: "45s", "5m", "5m30s", "2h", "1h15m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % secondsPerMinute
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % minutesPerHour
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, minutes)
}
