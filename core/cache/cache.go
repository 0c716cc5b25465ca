package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"content-platform/core/metrics"
)

// Cache is an in-process read-through cache with a fixed TTL.
//
// Writes to the underlying store do NOT evict entries; readers may see
// data up to TTL old. The performer endpoints document that staleness
// window.
type Cache struct {
	lru *expirable.LRU[string, any]
	sf  singleflight.Group
	ttl time.Duration
}

// New creates a cache with the given maximum size and TTL.
func New(cfg Config) *Cache {
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 100
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{
		lru: expirable.NewLRU[string, any](maxEntries, nil, ttl),
		ttl: ttl,
	}
}

// TTL returns the configured entry lifetime.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// GetOrCompute returns the cached value for key, or invokes compute,
// stores its result and returns it. Concurrent misses for the same key
// share a single compute call (singleflight); compute errors are
// returned without caching anything.
func (c *Cache) GetOrCompute(key string, compute func() (any, error)) (any, error) {
	if val, ok := c.lru.Get(key); ok {
		metrics.CacheHits.Inc()
		return val, nil
	}
	metrics.CacheMisses.Inc()

	val, err, _ := c.sf.Do(key, func() (any, error) {
		// Double-check after winning the flight; a concurrent caller
		// may have stored the value already.
		if val, ok := c.lru.Get(key); ok {
			return val, nil
		}
		val, err := compute()
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, val)
		return val, nil
	})
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Invalidate removes a single entry. Production code paths never call
// this; it exists for tests and operational tooling.
func (c *Cache) Invalidate(key string) {
	c.lru.Remove(key)
}
