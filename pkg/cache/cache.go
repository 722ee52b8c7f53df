// Package cache stores parsed graphs, layouts and rendered images between
// runs so that re-rendering a large IFC file does not re-parse it.
//
// Entries are addressed by keys built with a [Keyer] from content hashes, so
// an edited file never hits a stale entry. [FileCache] persists entries under
// the user cache directory; [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Entry lifetimes.
const (
	TTLGraph    = 7 * 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data for key and whether it was found.
	// Expired or unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache misses every read and drops every write. It backs --no-cache
// and a disabled [cache] section in the config.
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
