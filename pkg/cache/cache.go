// Package cache stores computed layouts and rendered artifacts.
//
// Three backends implement Cache: FileCache for the CLI, RedisCache for the
// HTTP server and NullCache when caching is disabled. Keys are produced by a
// Keyer so that every option affecting the output is part of the key.
//
// Wrap a backend with NewInstrumented to report hits, misses and writes to
// the registered observability.CacheHooks.
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is reported
	// as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TTLs for cached entries.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Key types, used as key prefixes and as the keyType reported to hooks.
const (
	KeyTypeLayout   = "layout"
	KeyTypeArtifact = "artifact"
)

// KeyType returns the key type embedded in key, ignoring any scope prefix.
// It returns "other" for keys not produced by a Keyer.
func KeyType(key string) string {
	for _, kt := range []string{KeyTypeLayout, KeyTypeArtifact} {
		if strings.HasPrefix(key, kt+":") || strings.Contains(key, ":"+kt+":") {
			return kt
		}
	}
	return "other"
}
