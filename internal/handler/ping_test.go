package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/cache"
	"storefront/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { return errors.New("fail") },
		}
		cch := &cache.FakeCache{}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(db, cch)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		dbCalled := false
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { dbCalled = true; return nil },
		}
		cch := &cache.FakeCache{SetFn: func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("set"))
		}}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(db, cch)(ctx)
		require.NoError(t, err)
		require.True(t, dbCalled)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("cache read back fails", func(t *testing.T) {
		for name, get := range map[string]*redis.StringCmd{
			"missing key": redis.NewStringResult("", redis.Nil),
			"wrong value": redis.NewStringResult("stale", nil),
		} {
			db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
			cch := &cache.FakeCache{
				SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
					return redis.NewStatusResult("OK", nil)
				},
				GetFn: func(context.Context, string) *redis.StringCmd { return get },
			}
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			rec := httptest.NewRecorder()
			require.NoError(t, PingHandler(db, cch)(e.NewContext(req, rec)))
			require.Equal(t, http.StatusInternalServerError, rec.Code, name)
			require.Contains(t, rec.Body.String(), "cache unhealthy", name)
		}
	})

	t.Run("ok", func(t *testing.T) {
		dbCalled := false
		stored := map[string]any{}
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { dbCalled = true; return nil },
		}
		cch := &cache.FakeCache{
			SetFn: func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
				require.Equal(t, 10*time.Second, exp)
				stored[key] = val
				return redis.NewStatusResult("OK", nil)
			},
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				v, ok := stored[key].(string)
				if !ok {
					return redis.NewStringResult("", redis.Nil)
				}
				return redis.NewStringResult(v, nil)
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(db, cch)(ctx)
		require.NoError(t, err)
		require.True(t, dbCalled)
		require.Equal(t, "pong", stored["health:ping"])
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})
}
