package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

// Entry represents a cache entry with metadata
type Entry struct {
	Key       string    `json:"key"`
	Value     any       `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Service defines the interface for cache operations
type Service interface {
	// Set stores a value with the given key and TTL. A zero TTL never expires.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Get retrieves a value by key, ErrCacheMiss when absent or expired
	Get(ctx context.Context, key string) (any, error)

	// Delete removes key, a no-op when it is absent
	Delete(ctx context.Context, key string) error

	GetStats(ctx context.Context) (*Stats, error)
}

// Stats represents cache statistics
type Stats struct {
	Hits      int64     `json:"hits"`
	Misses    int64     `json:"misses"`
	Keys      int64     `json:"keys"`
	StartedAt time.Time `json:"started_at"`
}
