// Package cache provides the content-addressed cache for external service
// results. Keys are hashes of the image reference, namespaced by purpose.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Namespace prefixes keep the three result kinds from colliding on the same
// image hash.
const (
	NamespaceAnalysis = "analysis:"
	NamespaceVehicle  = "vehicle:"
	NamespaceOcr      = "ocr:"
)

// Cache defines the interface for a shared key-value cache. Stale reads are
// acceptable; last-writer-wins on writes.
type Cache interface {
	// Get retrieves a cached value. A miss returns ("", false, nil).
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Key builds a namespaced content-addressed cache key from an image
// reference.
func Key(namespace, imageRef string) string {
	sum := sha256.Sum256([]byte(imageRef))
	return namespace + hex.EncodeToString(sum[:])
}

// Maybe wraps an optional cache. A nil inner cache always misses and never
// errors, so call sites need no nil checks.
type Maybe struct {
	inner Cache
}

// NewMaybe wraps c, which may be nil.
func NewMaybe(c Cache) *Maybe {
	return &Maybe{inner: c}
}

// Make sure we conform to the interface
var _ Cache = (*Maybe)(nil)

// Get retrieves a cached value, always missing when no cache is configured.
func (m *Maybe) Get(ctx context.Context, key string) (string, bool, error) {
	if m == nil || m.inner == nil {
		return "", false, nil
	}
	return m.inner.Get(ctx, key)
}

// Set stores a value, silently dropping it when no cache is configured.
func (m *Maybe) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m == nil || m.inner == nil {
		return nil
	}
	return m.inner.Set(ctx, key, value, ttl)
}
