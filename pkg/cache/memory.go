package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is an in-process Service. Expired entries are evicted lazily on
// access and by Set.
type MemoryCache struct {
	mu        sync.Mutex
	data      map[string]*Entry
	hits      int64
	misses    int64
	startedAt time.Time
	now       func() time.Time
}

var _ Service = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data:      make(map[string]*Entry),
		startedAt: time.Now(),
		now:       time.Now,
	}
}

func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value, ttl)
	c.evictExpired()

	return nil
}

func (c *MemoryCache) Get(_ context.Context, key string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.lookup(key)
	if !ok {
		c.misses++
		return nil, ErrCacheMiss
	}

	c.hits++

	return entry.Value, nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)

	return nil
}

func (c *MemoryCache) GetStats(_ context.Context) (*Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpired()

	return &Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Keys:      int64(len(c.data)),
		StartedAt: c.startedAt,
	}, nil
}

func (c *MemoryCache) set(key string, value any, ttl time.Duration) {
	now := c.now()

	entry := &Entry{
		Key:       key,
		Value:     value,
		CreatedAt: now,
	}
	if ttl > 0 {
		entry.ExpiresAt = now.Add(ttl)
	}

	c.data[key] = entry
}

// lookup must be called with mu held.
func (c *MemoryCache) lookup(key string) (*Entry, bool) {
	entry, ok := c.data[key]
	if !ok {
		return nil, false
	}

	if c.expired(entry) {
		delete(c.data, key)
		return nil, false
	}

	return entry, true
}

func (c *MemoryCache) expired(entry *Entry) bool {
	return !entry.ExpiresAt.IsZero() && !c.now().Before(entry.ExpiresAt)
}

func (c *MemoryCache) evictExpired() {
	for key, entry := range c.data {
		if c.expired(entry) {
			delete(c.data, key)
		}
	}
}
