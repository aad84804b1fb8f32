// Package cache stores parsed mod metadata between scans.
//
// Scanning a large mod collection means parsing hundreds of About.xml files.
// The scanner keys each parsed result by file path and modification time
// (see [MetadataKey]) so unchanged mods are served from disk on later runs.
//
// Two implementations are provided:
//
//   - [FileCache] stores entries as JSON files under a directory, by default
//     the user cache directory reported by [DefaultDir].
//   - [NullCache] never stores anything and is used when caching is disabled
//     or in tests.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidKey is returned when a cache key is empty.
var ErrInvalidKey = errors.New("cache: empty key")

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true on a hit. Expired or corrupt
	// entries count as a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
