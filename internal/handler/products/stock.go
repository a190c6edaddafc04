// File: internal/handler/products/stock.go
package products

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UpdateStockHandler 更新商品庫存（管理員）
// @Summary     更新庫存
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id   path     string                 true "商品 ID"
// @Param       body body     api.UpdateStockRequest true "新庫存"
// @Success     200  {object} api.ProductResponse
// @Failure     400  {object} api.Response
// @Failure     401  {object} api.Response
// @Failure     403  {object} api.Response
// @Failure     404  {object} api.Response
// @Security    CookieAuth
// @Router      /products/{id}/stock [patch]
func UpdateStockHandler(catalog Catalog, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		requester := middleware.CurrentUser(c)
		if requester == nil {
			return c.JSON(http.StatusUnauthorized, api.Response{Msg: "user not authenticated"})
		}

		var req api.UpdateStockRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.WriteError(c, log, err)
		}

		p, err := catalog.UpdateStock(c.Request().Context(), requester.Role, c.Param("id"), req.Stock)
		if err != nil {
			return handler.WriteError(c, log, err)
		}
		return c.JSON(http.StatusOK, api.ProductResponse{
			Msg:     "Stock updated successfully",
			Success: true,
			Product: p,
		})
	}
}
