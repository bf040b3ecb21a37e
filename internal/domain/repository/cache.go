package repository

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned when a key is not present in the cache.
var ErrCacheMiss = errors.New("cache miss")

// CacheRepository is a byte-oriented cache with TTL semantics managed by
// the implementation. Analytics results are stored under a shared key
// prefix so an ingestion run can invalidate them wholesale.
type CacheRepository interface {
	// Get returns the cached value, or ErrCacheMiss when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the value under key with the configured TTL.
	Set(ctx context.Context, key string, value []byte) error

	// DeletePattern removes every key matching the glob pattern.
	DeletePattern(ctx context.Context, pattern string) error
}
