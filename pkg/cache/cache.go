// Package cache provides a small keyed byte cache with file, Redis, and
// no-op backends. The stoplist store and the CLI use it for warm-start
// data that is always safe to recompute.
package cache

import (
	"context"
	"errors"
	"time"
)

// Cache is a keyed byte store with optional per-entry expiration.
// A miss is reported via the bool return, not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")
