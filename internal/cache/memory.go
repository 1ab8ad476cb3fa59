package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process QueryCache for tests and single-node runs
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty in-process cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the cached bytes for key
func (c *MemoryCache) Get(_ context.Context, key Key) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key.String()]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key.String())
		c.mu.Unlock()
		return nil, false, nil
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, true, nil
}

// Set stores value under key. A zero ttl never expires.
func (c *MemoryCache) Set(_ context.Context, key Key, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key.String()] = entry
	c.mu.Unlock()
	return nil
}

// Invalidate drops matching entries
func (c *MemoryCache) Invalidate(_ context.Context, inv Invalidation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if inv.Kind() == InvalidateExact {
		delete(c.entries, inv.Target())
		return nil
	}
	for k := range c.entries {
		if strings.HasPrefix(k, inv.Target()) {
			delete(c.entries, k)
		}
	}
	return nil
}

// Len returns the number of live entries
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// NoopCache never stores anything. Every read is a miss.
type NoopCache struct{}

func (NoopCache) Get(context.Context, Key) ([]byte, bool, error)        { return nil, false, nil }
func (NoopCache) Set(context.Context, Key, []byte, time.Duration) error { return nil }
func (NoopCache) Invalidate(context.Context, Invalidation) error        { return nil }
