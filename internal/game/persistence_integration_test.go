//go:build integration

package game

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, rdb.Ping(ctx).Err(), "redis is not reachable")
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisPersistence_CreateSaveLoad(t *testing.T) {
	ctx := context.Background()
	rdb := newRedisClient(t)

	// Чистим Redis, чтобы тест был детерминированный
	require.NoError(t, rdb.FlushDB(ctx).Err())

	persist := NewRedisRoundStore(rdb, time.Hour)
	svc1 := NewRoundService(Config{}, persist, nil)

	r, err := svc1.Create(ctx, 4)
	require.NoError(t, err)

	r.mu.Lock()
	secret := append(Number(nil), r.secret...)
	r.mu.Unlock()

	_, err = r.Submit(Number{secret[1], secret[0], secret[3], secret[2]})
	require.NoError(t, err)

	// рестарт
	svc2 := NewRoundService(Config{}, persist, nil)
	r2, err := svc2.GetOrLoad(ctx, r.ID())
	require.NoError(t, err)
	require.Equal(t, r.State(), r2.State())

	_, err = r2.Submit(secret)
	require.NoError(t, err)
	require.Equal(t, PhaseWon, r2.Phase())

	ttl, err := rdb.TTL(ctx, "round:"+r.ID()+":snapshot").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
}

func TestRedisPersistence_Missing(t *testing.T) {
	ctx := context.Background()
	rdb := newRedisClient(t)

	persist := NewRedisRoundStore(rdb, time.Hour)
	_, found, err := persist.Load(ctx, "does-not-exist")
	require.NoError(t, err)
	require.False(t, found)
}
