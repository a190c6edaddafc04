// File: internal/handler/auth/cookie.go
package auth

import (
	"net/http"
	"time"

	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
)

// CookieConfig session cookie 設定；TTL <= 0 表示 session cookie（瀏覽器關閉即失效）
type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

func setSessionCookie(c echo.Context, cfg CookieConfig, token string) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	}
	if cfg.TTL > 0 {
		cookie.MaxAge = int(cfg.TTL.Seconds())
		cookie.Expires = time.Now().Add(cfg.TTL)
	}
	c.SetCookie(cookie)
}

func clearSessionCookie(c echo.Context, cfg CookieConfig) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
