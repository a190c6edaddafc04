// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 回傳目前登入的使用者
// @Summary     取得目前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.AuthResponse
// @Failure     401 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    CookieAuth
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.Response{Msg: "user not authenticated"})
		}
		return c.JSON(http.StatusOK, api.AuthResponse{Success: true, User: api.NewUserResponse(user)})
	}
}
