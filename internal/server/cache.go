package server

import (
	"sync"
	"time"
)

// responseCache is a small TTL cache for rendered JSON responses. Entries
// expire lazily on read; the serve process is short-lived enough that a
// background sweeper is not worth its goroutine.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *responseCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.body, true
}

func (c *responseCache) Set(key string, body []byte) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{body: body, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}
