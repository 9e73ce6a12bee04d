package cache

import (
	"context"
	"errors"
	"time"

	"github.com/mdSafdarKhan/redis/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

type UserCacheResult struct {
	User domain.User `json:"user"`
}

// UserCache stores users by key. A ttl <= 0 means the entry does not expire.
type UserCache interface {
	Get(ctx context.Context, key string) (*UserCacheResult, error)
	Set(ctx context.Context, key string, result *UserCacheResult, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	BuildKeyByID(userID int64) string
	Close() error
}
