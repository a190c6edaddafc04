// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"storefront/internal/api"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 清除 jwt cookie，不需登入且可重複呼叫
// @Summary     登出
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.Response
// @Router      /auth/logout [post]
func LogoutHandler(cookies CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		clearSessionCookie(c, cookies)
		return c.JSON(http.StatusOK, api.Response{Msg: "Logout successful", Success: true})
	}
}
