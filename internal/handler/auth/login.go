// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoginHandler 使用 Email/Password 驗證，成功時寫入 jwt cookie
// @Summary     登入使用者
// @Description 驗證帳密並以 HttpOnly cookie 發行 session token；帳號不存在與密碼錯誤回應相同
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     201  {object} api.AuthResponse
// @Failure     400  {object} api.Response
// @Failure     401  {object} api.Response
// @Failure     429  {object} api.RateLimitResponse
// @Failure     500  {object} api.Response
// @Router      /auth/login [post]
func LoginHandler(svc Service, cookies CookieConfig, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.WriteError(c, log, err)
		}

		res, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.WriteError(c, log, err)
		}

		setSessionCookie(c, cookies, res.Token)
		return c.JSON(http.StatusCreated, api.AuthResponse{
			Msg:     "Login successful. Redirecting to Account...",
			Success: true,
			User:    api.NewUserResponse(res.User),
		})
	}
}
