// Package cache stores rendered artifacts between CLI runs.
//
// Rendering SVG or PNG output runs Graphviz in process, which dominates the
// runtime for large graphs. The cache keys artifacts by the DOT source and
// output format, so re-rendering an unchanged graph file is a disk read.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache stores byte blobs under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// Hash computes a SHA-256 hash of the input data as a 64-character
// hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// RenderKey builds the cache key for a rendered artifact: the output
// format plus a hash of the DOT source.
func RenderKey(dot, format string) string {
	return fmt.Sprintf("render:%s:%s", format, Hash([]byte(dot)))
}
