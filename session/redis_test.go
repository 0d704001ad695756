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

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreWithClient(client, "lawwork:session:", 30*time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	return mr, store
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, s := setupMiniRedis(t)

	require.NoError(t, s.Ping(ctx))

	_, err := s.Get(ctx, "sid", "assessmentData")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "sid", "assessmentData", `{"firmName":"Acme"}`))
	assert.Equal(t, `{"firmName":"Acme"}`, mr.HGet("lawwork:session:sid", "assessmentData"))
	assert.Equal(t, 30*time.Minute, mr.TTL("lawwork:session:sid"))

	v, err := s.Get(ctx, "sid", "assessmentData")
	require.NoError(t, err)
	assert.Equal(t, `{"firmName":"Acme"}`, v)

	require.NoError(t, s.Delete(ctx, "sid", "assessmentData"))
	_, err = s.Get(ctx, "sid", "assessmentData")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	ctx := context.Background()
	mr, s := setupMiniRedis(t)

	require.NoError(t, s.Set(ctx, "sid", "k", "v"))
	mr.FastForward(31 * time.Minute)

	_, err := s.Get(ctx, "sid", "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStorePingFailure(t *testing.T) {
	mr, s := setupMiniRedis(t)
	mr.Close()
	assert.Error(t, s.Ping(context.Background()))
}
