package interfaces

import (
	"context"
	"time"
)

// Cache stores raw middleware responses by key
type Cache interface {
	// Get returns the cached value and whether it was found and still fresh
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value for ttl. A zero ttl means the entry never expires.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases the backend
	Close() error
}
