package cache

import (
	"slices"
	"time"
)

// Category identifies which list an entry holds.
type Category int

const (
	// Countries is the list of countries the client can connect to.
	Countries Category = iota
	// ServerGroups is the list of server groups (P2P, Double_VPN, ...).
	ServerGroups
)

func (c Category) String() string {
	switch c {
	case Countries:
		return "countries"
	case ServerGroups:
		return "groups"
	default:
		return "unknown"
	}
}

// Entry is a cached list with the time it was fetched.
type Entry struct {
	// Category is the list kind.
	Category Category

	// Items is the list in the order the client printed it.
	Items []string

	// FetchedAt is when the list was obtained.
	FetchedAt time.Time
}

// NewEntry creates an entry holding a copy of items.
func NewEntry(category Category, items []string, fetchedAt time.Time) *Entry {
	return &Entry{
		Category:  category,
		Items:     slices.Clone(items),
		FetchedAt: fetchedAt,
	}
}

// Age returns how long ago the entry was fetched, relative to now.
func (e *Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}

// IsFresh reports whether the entry may be served without refetching.
// A non-positive ttl means nothing is ever fresh.
func (e *Entry) IsFresh(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return e.Age(now) < ttl
}

// ExpiresAt returns when the entry stops being fresh under ttl.
func (e *Entry) ExpiresAt(ttl time.Duration) time.Time {
	return e.FetchedAt.Add(ttl)
}
