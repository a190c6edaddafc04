// File: internal/middleware/ratelimit.go
package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/api"
	"storefront/internal/cache"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RateLimitConfig 固定視窗限流設定
type RateLimitConfig struct {
	Name    string
	Limit   int
	Window  time.Duration
	Message string
}

var (
	AuthLimit = RateLimitConfig{
		Name:    "auth",
		Limit:   5,
		Window:  15 * time.Minute,
		Message: "Too many login attempts, please try again after 15 minutes",
	}
	APILimit = RateLimitConfig{
		Name:    "api",
		Limit:   20,
		Window:  time.Minute,
		Message: "Too many requests, please try again later",
	}
	GlobalLimit = RateLimitConfig{
		Name:    "global",
		Limit:   100,
		Window:  15 * time.Minute,
		Message: "Too many requests, please try again later.",
	}
)

// RateLimiter 以 Redis INCR + EXPIRE 實作每個 IP 的固定視窗計數
// 同一個 RateLimiter 掛在多條路由時共用計數
type RateLimiter struct {
	counters cache.Cache
	cfg      RateLimitConfig
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewRateLimiter(counters cache.Cache, cfg RateLimitConfig, log logrus.FieldLogger) *RateLimiter {
	return &RateLimiter{counters: counters, cfg: cfg, log: log, now: time.Now}
}

func (l *RateLimiter) key(ip string, windowStart time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%s:%d", l.cfg.Name, ip, windowStart.Unix())
}

// Middleware 計數儲存失敗時放行並記錄警告
func (l *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			ip := c.RealIP()
			now := l.now()
			windowStart := now.Truncate(l.cfg.Window)
			key := l.key(ip, windowStart)

			count, err := l.counters.Incr(ctx, key).Result()
			if err != nil {
				l.log.WithError(err).WithField("limiter", l.cfg.Name).Warn("rate limit counter unavailable")
				return next(c)
			}
			if count == 1 {
				if err := l.counters.Expire(ctx, key, l.cfg.Window).Err(); err != nil {
					l.log.WithError(err).WithField("limiter", l.cfg.Name).Warn("rate limit expire failed")
				}
			}

			reset := int(math.Ceil(windowStart.Add(l.cfg.Window).Sub(now).Seconds()))
			remaining := l.cfg.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("RateLimit-Limit", strconv.Itoa(l.cfg.Limit))
			h.Set("RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("RateLimit-Reset", strconv.Itoa(reset))

			if int(count) > l.cfg.Limit {
				h.Set("Retry-After", strconv.Itoa(reset))
				return c.JSON(http.StatusTooManyRequests, api.RateLimitResponse{
					Status:  http.StatusTooManyRequests,
					Message: l.cfg.Message,
				})
			}
			return next(c)
		}
	}
}
