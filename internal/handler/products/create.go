// File: internal/handler/products/create.go
package products

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// CreateHandler 建立商品（管理員）
// @Summary     建立商品
// @Description 先驗證欄位再檢查角色，無效輸入一律回 400
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateProductRequest true "商品資料"
// @Success     201  {object} api.ProductResponse
// @Failure     400  {object} api.Response
// @Failure     401  {object} api.Response
// @Failure     403  {object} api.Response
// @Security    CookieAuth
// @Router      /products [post]
func CreateHandler(catalog Catalog, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		requester := middleware.CurrentUser(c)
		if requester == nil {
			return c.JSON(http.StatusUnauthorized, api.Response{Msg: "user not authenticated"})
		}

		var req api.CreateProductRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.WriteError(c, log, err)
		}

		p, err := catalog.CreateProduct(c.Request().Context(), requester.Role, req.ToInput())
		if err != nil {
			return handler.WriteError(c, log, err)
		}
		return c.JSON(http.StatusCreated, api.ProductResponse{
			Msg:     "Product created successfully",
			Success: true,
			Product: p,
		})
	}
}
