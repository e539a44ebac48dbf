package cache

import (
	"time"

	"academia_bere/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

var _ interfaces.ICache = (*memoryCache)(nil)

// NewMemoryCache creates an in-process cache.
// defaultExpiration applies to items set with a zero ttl; cleanupInterval is
// how often expired items are purged.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) interfaces.ICache {
	return &memoryCache{store: gocache.New(defaultExpiration, cleanupInterval)}
}

func (c *memoryCache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

func (c *memoryCache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
}

func (c *memoryCache) Delete(key string) {
	c.store.Delete(key)
}
