package sitecache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a short-TTL read-through cache for sitewide context values.
// Expiry is time-based only; writes are not invalidated explicitly, so
// an edit can take up to the TTL to become visible. Concurrent readers
// see stale-but-consistent values and the last writer wins on refill.
type Cache struct {
	store *gocache.Cache
	ttl   time.Duration
}

// New creates a cache with the given TTL.
func New(ttl time.Duration) *Cache {
	return &Cache{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// GetOrLoad returns the cached value for key, calling load and caching
// the result on a miss. A load error is returned without caching.
func (c *Cache) GetOrLoad(key string, load func() (interface{}, error)) (interface{}, error) {
	if v, ok := c.store.Get(key); ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		return nil, err
	}
	c.store.Set(key, v, c.ttl)
	return v, nil
}

// Flush drops every cached entry. Used by tests and the seed path.
func (c *Cache) Flush() {
	c.store.Flush()
}
