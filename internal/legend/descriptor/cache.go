package descriptor

import "sync"

type cacheKey struct {
	domain string
	id     string
}

// FallbackCache memoizes synthesized descriptors keyed by domain and id.
//
// The cache grows monotonically; the id space is bounded by loaded content.
type FallbackCache struct {
	mu      sync.Mutex
	entries map[cacheKey]any
}

// NewFallbackCache creates an empty cache.
func NewFallbackCache() *FallbackCache {
	return &FallbackCache{entries: make(map[cacheKey]any)}
}

// Len returns the number of cached fallback entries.
func (c *FallbackCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops every cached entry.
func (c *FallbackCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]any)
}

// load returns the cached value for key or stores the one produced by build.
// Errors from build are returned without caching. build runs outside the lock
// so fallbacks may resolve other ids; the first stored value wins.
func (c *FallbackCache) load(key cacheKey, build func() (any, error)) (any, error) {
	c.mu.Lock()
	value, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return value, nil
	}

	built, err := build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = built
	return built, nil
}
