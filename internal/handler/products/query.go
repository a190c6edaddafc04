// File: internal/handler/products/query.go
package products

import (
	"strconv"

	"storefront/internal/service"

	"github.com/labstack/echo/v4"
)

// 無法解析的查詢參數視為未提供，交由 service 套用預設值
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}

func queryFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryBool(c echo.Context, name string) *bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return nil
	}
	return &v
}

func listFilter(c echo.Context) service.ListFilter {
	return service.ListFilter{
		Featured: queryBool(c, "featured"),
		MinPrice: queryFloat(c, "minPrice"),
		MaxPrice: queryFloat(c, "maxPrice"),
		Category: c.QueryParam("category"),
	}
}
