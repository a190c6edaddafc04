// File: internal/handler/auth/promote.go
package auth

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PromoteHandler 管理員將指定 email 的使用者提升為管理員
// @Summary     提升為管理員
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.PromoteRequest true "目標使用者"
// @Success     200  {object} api.AuthResponse
// @Failure     400  {object} api.Response
// @Failure     401  {object} api.Response
// @Failure     403  {object} api.Response
// @Failure     404  {object} api.Response
// @Security    CookieAuth
// @Router      /auth/promote-to-admin [post]
func PromoteHandler(svc Service, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		requester := middleware.CurrentUser(c)
		if requester == nil {
			return c.JSON(http.StatusUnauthorized, api.Response{Msg: "user not authenticated"})
		}

		var req api.PromoteRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.WriteError(c, log, err)
		}

		user, err := svc.PromoteToAdmin(c.Request().Context(), requester.Role, req.Email)
		if err != nil {
			return handler.WriteError(c, log, err)
		}
		return c.JSON(http.StatusOK, api.AuthResponse{
			Msg:     "User promoted to admin successfully",
			Success: true,
			User:    api.NewUserResponse(user),
		})
	}
}
