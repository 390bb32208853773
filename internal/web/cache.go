package web

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// PageCache keeps rendered pages for a fixed time, like incremental static
// regeneration: the first request after expiry renders the page again and
// concurrent misses for the same key share one render.
type PageCache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]cachedPage
}

type cachedPage struct {
	body    []byte
	expires time.Time
}

// NewPageCache returns a cache holding pages for ttl. A ttl of zero or less
// returns nil, which disables caching.
func NewPageCache(ttl time.Duration) *PageCache {
	if ttl <= 0 {
		return nil
	}
	return &PageCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cachedPage),
	}
}

// TTL returns how long a page stays cached.
func (c *PageCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached page for key, calling render on a miss. hit
// reports whether the body came from the cache. Render errors are not
// cached.
func (c *PageCache) Get(key string, render func() ([]byte, error)) (body []byte, hit bool, err error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expires) {
		return e.body, true, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		b, err := render()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = cachedPage{body: b, expires: c.now().Add(c.ttl)}
		c.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.([]byte), false, nil
}

// Invalidate drops key from the cache.
func (c *PageCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Purge empties the cache.
func (c *PageCache) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]cachedPage)
	c.mu.Unlock()
}

// Len returns the number of cached pages, expired ones included.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
