package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisAdapter(t *testing.T) {
	// Skip test if Redis is not available
	client := redis.NewClient(&redis.Options{
		Addr: "127.0.0.1:6379",
		DB:   3,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer client.FlushDB(ctx)

	cache := NewRedisAdapter(client)

	t.Run("Miss", func(t *testing.T) {
		_, err := cache.Get(ctx, "directory:email:nobody@x.com")
		assert.ErrorIs(t, err, ports.ErrCacheMiss)
	})

	t.Run("SetGetDelete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k1", []byte("v1"), time.Minute))
		require.NoError(t, cache.Set(ctx, "k2", []byte("v2"), time.Minute))

		got, err := cache.Get(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)

		require.NoError(t, cache.Delete(ctx, "k1", "k2"))
		_, err = cache.Get(ctx, "k2")
		assert.ErrorIs(t, err, ports.ErrCacheMiss)
	})

	t.Run("TTL", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "short", []byte("v"), 50*time.Millisecond))
		time.Sleep(150 * time.Millisecond)
		_, err := cache.Get(ctx, "short")
		assert.ErrorIs(t, err, ports.ErrCacheMiss)
	})
}
