// Package cache provides a small bounded, time-expiring key/value store.
// It knows nothing about what it stores; country detection and location
// search reuse it with different TTLs and key namespaces.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Cache is a mutex-guarded map with lazy TTL expiry and FIFO capacity
// eviction. Expiry is checked at read time; there is no background sweeper.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	order   []string // insertion order, oldest first
	maxSize int
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache holding at most maxSize entries, each valid for ttl
// after insertion. A maxSize of zero disables the capacity bound; a ttl of
// zero disables expiry.
func New[V any](maxSize int, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the value for key. An entry past its TTL is evicted and
// reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.ttl > 0 && c.now().Sub(e.insertedAt) > c.ttl {
		c.removeLocked(key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key. When the cache is at capacity the single
// oldest-inserted entry is evicted first (insertion order, not access order).
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.removeLocked(key)
	}
	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.removeLocked(c.order[0])
	}
	c.entries[key] = entry[V]{value: value, insertedAt: c.now()}
	c.order = append(c.order, key)
}

// Delete removes key if present.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
	c.order = c.order[:0]
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[V]) removeLocked(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
