// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/handler"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RegisterHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 建立一般使用者帳號，不會自動登入
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.AuthResponse
// @Failure     400  {object} api.Response
// @Failure     409  {object} api.Response
// @Failure     429  {object} api.RateLimitResponse
// @Failure     500  {object} api.Response
// @Router      /auth/register [post]
func RegisterHandler(svc Service, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.WriteError(c, log, err)
		}

		user, err := svc.Register(c.Request().Context(), service.RegisterInput{
			Name:           req.Name,
			Email:          req.Email,
			Password:       req.Password,
			RepeatPassword: req.RepeatPassword,
		})
		if err != nil {
			return handler.WriteError(c, log, err)
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			Msg:     "Registration successful. Redirecting to login...",
			Success: true,
			User:    api.NewUserResponse(user),
		})
	}
}
