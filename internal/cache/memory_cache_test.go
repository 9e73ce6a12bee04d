package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdSafdarKhan/redis/internal/domain"
)

func TestMemoryUserCache_SetGetDelete(t *testing.T) {
	c := NewMemoryUserCache("users")
	ctx := context.Background()
	key := c.BuildKeyByID(1)
	assert.Equal(t, "users:id:1", key)

	_, err := c.Get(ctx, key)
	require.ErrorIs(t, err, ErrCacheMiss)

	want := domain.User{ID: 1, Name: "Safdar", Followers: 15000}
	require.NoError(t, c.Set(ctx, key, &UserCacheResult{User: want}, 0))
	assert.Equal(t, 1, c.Len())

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, want, got.User)

	require.NoError(t, c.Delete(ctx, key))
	_, err = c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryUserCache_ReturnsCopies(t *testing.T) {
	c := NewMemoryUserCache("users")
	ctx := context.Background()
	key := c.BuildKeyByID(2)

	in := &UserCacheResult{User: domain.User{ID: 2, Name: "Farhan", Followers: 6000}}
	require.NoError(t, c.Set(ctx, key, in, 0))
	in.User.Name = "mutated"

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Farhan", got.User.Name)

	got.User.Followers = 1
	again, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), again.User.Followers)
}

func TestMemoryUserCache_TTL(t *testing.T) {
	c := NewMemoryUserCache("users")
	ctx := context.Background()
	key := c.BuildKeyByID(3)

	require.NoError(t, c.Set(ctx, key, &UserCacheResult{User: domain.User{ID: 3}}, 20*time.Millisecond))
	time.Sleep(40 * time.Millisecond)

	_, err := c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryUserCache_CanceledContext(t *testing.T) {
	c := NewMemoryUserCache("users")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, c.BuildKeyByID(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, c.Set(ctx, "k", &UserCacheResult{}, 0), context.Canceled)
}

func TestMemoryUserCache_Close(t *testing.T) {
	c := NewMemoryUserCache("users")
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, c.BuildKeyByID(1), &UserCacheResult{}, 0))

	require.NoError(t, c.Close())
	assert.Equal(t, 0, c.Len())
}
