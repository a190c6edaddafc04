// File: internal/middleware/gate.go
package middleware

import (
	"context"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	ContextUserKey    = "user"
	SessionCookieName = "jwt"
)

// SessionResolver 由 token 解析出目前使用者，*service.AuthService 實作
type SessionResolver interface {
	GetSessionUser(ctx context.Context, token string) (*model.User, error)
}

// Gate 只負責驗證身分；角色檢查由各 handler / service 依情境處理
type Gate struct {
	sessions SessionResolver
	log      logrus.FieldLogger
}

func NewGate(sessions SessionResolver, log logrus.FieldLogger) *Gate {
	return &Gate{sessions: sessions, log: log}
}

// RequireAuth 讀取 jwt cookie，解析後將 *model.User 放入 context
func (g *Gate) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ""
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			token = cookie.Value
		}

		user, err := g.sessions.GetSessionUser(c.Request().Context(), token)
		if err != nil {
			switch service.KindOf(err) {
			case service.Unauthenticated:
				return c.JSON(http.StatusUnauthorized, api.Response{Msg: "user not authenticated"})
			case service.NotFound:
				return c.JSON(http.StatusNotFound, api.Response{Msg: "User not found"})
			default:
				g.log.WithError(err).WithField("uri", c.Request().RequestURI).Error("resolve session user")
				return c.JSON(http.StatusInternalServerError, api.Response{Msg: "Server error"})
			}
		}

		c.Set(ContextUserKey, user)
		return next(c)
	}
}

// CurrentUser 取出 RequireAuth 放入的使用者，未經 gate 時回傳 nil
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}
