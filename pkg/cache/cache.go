// Package cache stores rendered images keyed by their inputs.
//
// Rendering is deterministic: the same spec bytes, resolution, output format
// and font always produce the same image. The pipeline therefore hashes
// those inputs into a key and reuses a previous artifact when one exists.
//
// Two implementations are provided:
//   - [FileCache] stores entries under a directory (the CLI uses
//     $XDG_CACHE_HOME/ffimg)
//   - [NullCache] never stores anything and is used with --no-cache
package cache

import (
	"context"
	"time"
)

// DefaultArtifactTTL is how long a rendered image stays cached.
const DefaultArtifactTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key-value store with optional expiry.
type Cache interface {
	// Get returns the data for key and whether it was found.
	// A missing or expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
