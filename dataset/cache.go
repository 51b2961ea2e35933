package dataset

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Fetch when the cache has no snapshot under
// the requested key.
var ErrCacheMiss = errors.New("dataset: cache miss")

// Cache is the interface for caching dataset snapshots. Users should
// implement this interface with their preferred caching solution
// (e.g., Redis, Memcached, in-memory).
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns nil, nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL.
	// If ttl is 0, the value should not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error
}

// Store encodes the dataset as a snapshot and puts it in the cache.
func Store(ctx context.Context, c Cache, key string, d *Dataset, ttl time.Duration) error {
	b, err := d.MarshalBinary()
	if err != nil {
		return err
	}
	return c.Set(ctx, key, b, ttl)
}

// Fetch gets a snapshot from the cache and decodes it. A missing key is
// ErrCacheMiss.
func Fetch(ctx context.Context, c Cache, key string) (*Dataset, error) {
	b, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrCacheMiss
	}
	d := New()
	if err := d.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return d, nil
}
