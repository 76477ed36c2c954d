package infra

import (
	"sync"
	"time"
)

const (
	// DefaultMaxCacheEntries caps cache growth for long-lived sessions.
	DefaultMaxCacheEntries = 500

	// DefaultCleanupInterval is how often expired entries are swept.
	DefaultCleanupInterval = 2 * time.Minute
)

type cacheEntry struct {
	data       any
	expiresAt  time.Time
	accessedAt time.Time
}

// Cache is a TTL cache with LRU eviction, used for read-mostly Notion
// objects (bot identity, user records, database schemas).
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	maxEntries int

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCache creates a cache holding at most maxEntries values.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxCacheEntries
	}
	c := &Cache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get returns the cached value for key if present and unexpired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	now := time.Now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	e.accessedAt = now
	return e.data, true
}

// Set stores data under key for the given TTL, evicting the least
// recently used entry when the cache is full.
func (c *Cache) Set(key string, data any, ttl time.Duration) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = &cacheEntry{
		data:       data,
		expiresAt:  now.Add(ttl),
		accessedAt: now,
	}
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Size returns the current number of entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close stops the background cleanup goroutine.
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// evictOldestLocked removes the least recently accessed entry.
// Caller must hold c.mu.
func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.accessedAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.accessedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(DefaultCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *Cache) removeExpired() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}
