// Package cache keeps the country and server-group lists in memory with
// TTL expiration.
//
// Listing countries or groups means launching the VPN client, which takes
// long enough to be noticeable when a user moves back and forth between
// menus. The cache serves a list for a bounded time, and on a failed
// refresh it falls back to the last good list instead of failing. Key features:
//   - One entry per Category, created on first access
//   - Configurable TTL (default 5 minutes); a zero TTL disables reuse
//   - Stale entries are replaced lazily on the next access
//   - Explicit invalidation after the VPN state changes
//
// Nothing is persisted; each run starts with an empty cache. A Cache is
// owned by a single interactive session and is not safe for concurrent use.
package cache
