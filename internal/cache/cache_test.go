package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	ctx := context.Background()
	require.Panics(t, func() { c.Get(ctx, "k") })
	require.Panics(t, func() { c.Set(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.Incr(ctx, "k") })
	require.Panics(t, func() { c.Expire(ctx, "k", time.Second) })
	require.NoError(t, c.Close())

	var expired time.Duration
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("OK", nil)
	}
	c.IncrFn = func(ctx context.Context, key string) *redis.IntCmd {
		return redis.NewIntResult(3, nil)
	}
	c.ExpireFn = func(ctx context.Context, key string, exp time.Duration) *redis.BoolCmd {
		expired = exp
		return redis.NewBoolResult(true, nil)
	}
	c.CloseFn = func() error { return errors.New("close") }

	require.Equal(t, "v", c.Get(ctx, "k").Val())
	require.Equal(t, "OK", c.Set(ctx, "k", 1, 0).Val())
	require.EqualValues(t, 3, c.Incr(ctx, "k").Val())
	require.True(t, c.Expire(ctx, "k", time.Minute).Val())
	require.Equal(t, time.Minute, expired)
	require.EqualError(t, c.Close(), "close")
}
