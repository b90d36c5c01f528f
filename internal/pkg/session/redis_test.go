package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisBackendTest(t *testing.T, ttl time.Duration) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisBackend(rdb, "", ttl), mr
}

func TestRedisBackend(t *testing.T) {
	ctx := context.Background()
	backend, mr := newRedisBackendTest(t, time.Hour)
	require.NoError(t, backend.Ping(ctx))

	storage := backend.Scope("sid-1")
	value, err := storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, storage.Set(ctx, "token", "abc"))
	assert.Equal(t, "abc", mr.HGet(DefaultRedisPrefix+":sid-1", "token"))
	assert.Equal(t, time.Hour, mr.TTL(DefaultRedisPrefix+":sid-1"))

	value, err = backend.Scope("sid-2").Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, storage.Remove(ctx, "token"))
	value, err = storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisBackendExpiry(t *testing.T) {
	ctx := context.Background()
	backend, mr := newRedisBackendTest(t, time.Minute)

	storage := backend.Scope("sid")
	require.NoError(t, storage.Set(ctx, "token", "abc"))
	mr.FastForward(2 * time.Minute)

	value, err := storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisBackendUnreachable(t *testing.T) {
	backend, mr := newRedisBackendTest(t, 0)
	mr.Close()

	_, err := backend.Scope("sid").Get(context.Background(), "token")
	assert.Error(t, err)

	store, err := NewStore(context.Background(), backend.Scope("sid"), &fakeAuthAPI{})
	assert.Error(t, err)
	assert.Nil(t, store)
}
