package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 10 * time.Minute

// MemoryUserCache keeps users in process memory. Useful for local runs
// without redis and as the cache in tests.
type MemoryUserCache struct {
	store  *gocache.Cache
	prefix string
}

func NewMemoryUserCache(prefix string) *MemoryUserCache {
	return &MemoryUserCache{
		store:  gocache.New(gocache.NoExpiration, memoryCleanupInterval),
		prefix: prefix,
	}
}

func (c *MemoryUserCache) BuildKeyByID(userID int64) string {
	return fmt.Sprintf("%s:id:%d", c.prefix, userID)
}

func (c *MemoryUserCache) Get(ctx context.Context, key string) (*UserCacheResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, ok := c.store.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}

	// Hand out a copy so callers cannot mutate the stored entry.
	result := *v.(*UserCacheResult)
	return &result, nil
}

func (c *MemoryUserCache) Set(ctx context.Context, key string, result *UserCacheResult, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	expiration := ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
	}

	stored := *result
	c.store.Set(key, &stored, expiration)
	return nil
}

func (c *MemoryUserCache) Delete(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, k := range keys {
		c.store.Delete(k)
	}
	return nil
}

// Len reports the number of live entries.
func (c *MemoryUserCache) Len() int {
	return c.store.ItemCount()
}

func (c *MemoryUserCache) Close() error {
	c.store.Flush()
	return nil
}
