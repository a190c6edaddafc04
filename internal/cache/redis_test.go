package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// stubClient 以 FakeCache 提供 Cache 方法，只額外實作 Ping
type stubClient struct {
	FakeCache
	pingErr error
	closed  bool
}

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return redis.NewStatusResult("", errors.New("ping without deadline"))
	}
	return redis.NewStatusResult("PONG", s.pingErr)
}

func (s *stubClient) Close() error {
	s.closed = true
	return nil
}

func restoreRedisNewClient() {
	redisNewClient = func(o *redis.Options) redisClient { return redis.NewClient(o) }
}

func TestNewRedisClient(t *testing.T) {
	t.Cleanup(restoreRedisNewClient)

	var opts *redis.Options
	stub := &stubClient{}
	redisNewClient = func(o *redis.Options) redisClient {
		opts = o
		return stub
	}

	c, err := NewRedisClient("127.0.0.1:6379", "secret", 1)
	require.NoError(t, err)
	require.Same(t, stub, c)
	require.Equal(t, "127.0.0.1:6379", opts.Addr)
	require.Equal(t, "secret", opts.Password)
	require.Equal(t, 1, opts.DB)
	require.Equal(t, dialTimeout, opts.DialTimeout)
	require.Equal(t, 500*time.Millisecond, opts.ReadTimeout)
	require.Equal(t, opts.ReadTimeout, opts.WriteTimeout)
	require.False(t, stub.closed)
}

func TestNewRedisClientPingFail(t *testing.T) {
	t.Cleanup(restoreRedisNewClient)

	stub := &stubClient{pingErr: errors.New("connection refused")}
	redisNewClient = func(*redis.Options) redisClient { return stub }

	c, err := NewRedisClient("redis:6379", "", 0)
	require.Nil(t, c)
	require.ErrorContains(t, err, "redis ping redis:6379")
	require.ErrorContains(t, err, "connection refused")
	require.True(t, stub.closed)
}
