// File: internal/handler/products/get.go
package products

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// GetHandler 依 ID 取得商品
// @Summary     取得商品
// @Tags        products
// @Produce     json
// @Param       id  path     string true "商品 ID"
// @Success     200 {object} api.ProductResponse
// @Failure     404 {object} api.Response
// @Router      /products/{id} [get]
func GetHandler(catalog Catalog, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := catalog.GetByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			return handler.WriteError(c, log, err)
		}
		return c.JSON(http.StatusOK, api.ProductResponse{Success: true, Product: p})
	}
}
