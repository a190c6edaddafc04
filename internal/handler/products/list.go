// File: internal/handler/products/list.go
package products

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ListHandler 商品列表，支援篩選、排序與分頁
// @Summary     商品列表
// @Tags        products
// @Produce     json
// @Param       sort     query    string  false "price-asc | price-desc | rating，預設最新優先"
// @Param       page     query    int     false "頁碼，從 1 開始"
// @Param       limit    query    int     false "每頁筆數，預設 20"
// @Param       featured query    bool    false "只列精選"
// @Param       minPrice query    number  false "最低價格（含）"
// @Param       maxPrice query    number  false "最高價格（含）"
// @Param       category query    string  false "genser | tskjorte"
// @Success     200      {object} api.ProductListResponse
// @Failure     500      {object} api.Response
// @Router      /products [get]
func ListHandler(catalog Catalog, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := catalog.ListProducts(
			c.Request().Context(),
			listFilter(c),
			c.QueryParam("sort"),
			queryInt(c, "page"),
			queryInt(c, "limit"),
		)
		if err != nil {
			return handler.WriteError(c, log, err)
		}
		return c.JSON(http.StatusOK, api.NewProductListResponse(page))
	}
}

// CategoryHandler 依分類列出商品
// @Summary     分類商品列表
// @Tags        products
// @Produce     json
// @Param       category path     string true  "genser | tskjorte"
// @Param       sort     query    string false "price-asc | price-desc | rating"
// @Param       page     query    int    false "頁碼"
// @Param       limit    query    int    false "每頁筆數"
// @Success     200      {object} api.ProductListResponse
// @Failure     400      {object} api.Response
// @Router      /products/category/{category} [get]
func CategoryHandler(catalog Catalog, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := catalog.ListByCategory(
			c.Request().Context(),
			c.Param("category"),
			c.QueryParam("sort"),
			queryInt(c, "page"),
			queryInt(c, "limit"),
		)
		if err != nil {
			return handler.WriteError(c, log, err)
		}
		return c.JSON(http.StatusOK, api.NewProductListResponse(page))
	}
}

// NewestHandler 最新商品
// @Summary     最新商品
// @Tags        products
// @Produce     json
// @Param       limit query    int false "筆數，預設 5"
// @Success     200   {object} api.ProductsResponse
// @Failure     500   {object} api.Response
// @Router      /products/newest [get]
func NewestHandler(catalog Catalog, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := catalog.ListNewest(c.Request().Context(), queryInt(c, "limit"))
		if err != nil {
			return handler.WriteError(c, log, err)
		}
		return c.JSON(http.StatusOK, api.ProductsResponse{Success: true, Products: products})
	}
}

// FeaturedHandler 精選商品
// @Summary     精選商品
// @Tags        products
// @Produce     json
// @Param       limit query    int false "筆數，預設 5"
// @Success     200   {object} api.ProductsResponse
// @Failure     500   {object} api.Response
// @Router      /products/featured [get]
func FeaturedHandler(catalog Catalog, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := catalog.ListFeatured(c.Request().Context(), queryInt(c, "limit"))
		if err != nil {
			return handler.WriteError(c, log, err)
		}
		return c.JSON(http.StatusOK, api.ProductsResponse{Success: true, Products: products})
	}
}
