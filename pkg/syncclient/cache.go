package syncclient

import (
	"context"
	"sync"
)

// Cache is a client-side query cache keyed by string. Entries carry a stale
// flag instead of being dropped on invalidation, so optimistic values stay
// visible until the next authoritative fetch.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	fetches map[string]*inflight
}

type entry struct {
	value any
	stale bool
}

type inflight struct {
	cancel context.CancelFunc
}

// NewCache creates an empty query cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		fetches: make(map[string]*inflight),
	}
}

// Get returns the cached value for key, stale or not.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores a fresh value for key.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{value: value}
}

// Invalidate marks the key stale, forcing the next Fetch to hit the server.
// The current value stays readable in the meantime.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.stale = true
	}
}

// Remove drops the key entirely.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// CancelFetch aborts an in-flight fetch for the key, so a racing refetch
// cannot overwrite an optimistic write that follows.
func (c *Cache) CancelFetch(key string) {
	c.mu.Lock()
	f, ok := c.fetches[key]
	if ok {
		delete(c.fetches, key)
	}
	c.mu.Unlock()
	if ok {
		f.cancel()
	}
}

// Fetch returns the cached value if it is fresh, otherwise runs fn and
// stores its result. A fetch canceled via CancelFetch leaves the cache
// untouched.
func (c *Cache) Fetch(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !e.stale {
		c.mu.Unlock()
		return e.value, nil
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	f := &inflight{cancel: cancel}
	c.fetches[key] = f
	c.mu.Unlock()

	value, err := fn(fetchCtx)

	c.mu.Lock()
	owner := c.fetches[key] == f
	if owner {
		delete(c.fetches, key)
	}
	if !owner {
		// Canceled or superseded; the result must not touch the cache.
		c.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return nil, context.Canceled
	}
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.entries[key] = &entry{value: value}
	c.mu.Unlock()
	return value, nil
}
