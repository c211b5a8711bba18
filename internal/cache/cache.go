package cache

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/vpnmenu/internal/logging"
)

// Fetcher obtains a fresh list for category.
type Fetcher func(ctx context.Context, category Category) ([]string, error)

// Stats counts cache activity for the session.
type Stats struct {
	Hits        int
	Misses      int
	Fetches     int
	FetchErrors int
	StaleServed int
}

// Cache holds at most one entry per Category.
type Cache struct {
	fetch   Fetcher
	ttl     time.Duration
	now     func() time.Time
	logger  *zerolog.Logger
	entries map[Category]*Entry
	stats   Stats
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long entries are reused; zero disables reuse.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithLogger sets a logger used when the request context carries none.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cache) { c.logger = &logger }
}

// New creates an empty cache backed by fetch.
func New(fetch Fetcher, opts ...Option) *Cache {
	c := &Cache{
		fetch:   fetch,
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: make(map[Category]*Entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

func (c *Cache) log(ctx context.Context) *zerolog.Logger {
	l := logging.FromContext(ctx)
	if l.GetLevel() == zerolog.Disabled && c.logger != nil {
		return c.logger
	}
	return l
}

// Get returns the list for category, fetching it when there is no fresh
// entry. The caller owns the returned slice.
//
// When the fetch fails and an older entry exists, that entry's list is
// returned together with a *StaleError. Without an older entry the fetch
// error is returned and nothing is stored.
func (c *Cache) Get(ctx context.Context, category Category) ([]string, error) {
	log := c.log(ctx)
	now := c.now()

	prev, ok := c.entries[category]
	if ok && prev.IsFresh(now, c.ttl) {
		c.stats.Hits++
		log.Debug().
			Ctx(ctx).
			Str("component", "cache").
			Str("category", category.String()).
			Dur("age", prev.Age(now)).
			Msg("cache hit")
		return slices.Clone(prev.Items), nil
	}

	c.stats.Misses++
	c.stats.Fetches++
	items, err := c.fetch(ctx, category)
	if err != nil {
		c.stats.FetchErrors++
		if ok {
			c.stats.StaleServed++
			stale := &StaleError{Category: category, Age: prev.Age(now), Err: err}
			log.Warn().
				Ctx(ctx).
				Str("component", "cache").
				Str("category", category.String()).
				Err(err).
				Msg("refresh failed, serving stale list")
			return slices.Clone(prev.Items), stale
		}
		return nil, fmt.Errorf("fetching %s: %w", category, err)
	}

	entry := NewEntry(category, items, c.now())
	c.entries[category] = entry
	log.Debug().
		Ctx(ctx).
		Str("component", "cache").
		Str("category", category.String()).
		Int("items", len(items)).
		Time("expires_at", entry.ExpiresAt(c.ttl)).
		Msg("cache populated")
	return slices.Clone(entry.Items), nil
}

// Peek returns a copy of the stored entry for category without fetching.
// The entry may be stale.
func (c *Cache) Peek(category Category) (Entry, bool) {
	e, ok := c.entries[category]
	if !ok {
		return Entry{}, false
	}
	return *NewEntry(e.Category, e.Items, e.FetchedAt), true
}

// Invalidate discards the entry for category.
func (c *Cache) Invalidate(category Category) {
	delete(c.entries, category)
}

// InvalidateAll discards every entry.
func (c *Cache) InvalidateAll() {
	clear(c.entries)
}

// Stats returns a snapshot of the activity counters.
func (c *Cache) Stats() Stats {
	return c.stats
}

// IsStale reports whether err signals a list served from an expired entry.
func IsStale(err error) bool {
	var stale *StaleError
	return errors.As(err, &stale)
}
