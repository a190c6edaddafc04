// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/handler/auth"
	"storefront/internal/handler/products"
	"storefront/internal/middleware"
	"storefront/internal/service"
)

// Deps 路由所需的相依元件
type Deps struct {
	DB      database.DB
	Cache   cache.Cache
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Cookies auth.CookieConfig
	Log     logrus.FieldLogger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	gate := middleware.NewGate(d.Auth, d.Log)

	// 全域限流：所有路由共用
	e.Use(middleware.NewRateLimiter(d.Cache, middleware.GlobalLimit, d.Log).Middleware())

	authLimit := middleware.NewRateLimiter(d.Cache, middleware.AuthLimit, d.Log).Middleware()
	// 一般 API 限流：同一個計數器跨路由共用
	apiLimit := middleware.NewRateLimiter(d.Cache, middleware.APILimit, d.Log).Middleware()

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache), apiLimit)

	// 註冊、登入、登出與目前使用者
	api.POST("/auth/register", auth.RegisterHandler(d.Auth, d.Log), authLimit)
	api.POST("/auth/login", auth.LoginHandler(d.Auth, d.Cookies, d.Log), authLimit)
	api.POST("/auth/logout", auth.LogoutHandler(d.Cookies), apiLimit)
	api.GET("/auth/me", auth.MeHandler(), apiLimit, gate.RequireAuth)
	api.POST("/auth/promote-to-admin", auth.PromoteHandler(d.Auth, d.Log), apiLimit, gate.RequireAuth)

	// 商品目錄；寫入需登入，角色由 service 檢查
	api.GET("/products", products.ListHandler(d.Catalog, d.Log), apiLimit)
	api.GET("/products/newest", products.NewestHandler(d.Catalog, d.Log), apiLimit)
	api.GET("/products/featured", products.FeaturedHandler(d.Catalog, d.Log), apiLimit)
	api.GET("/products/category/:category", products.CategoryHandler(d.Catalog, d.Log), apiLimit)
	api.GET("/products/:id", products.GetHandler(d.Catalog, d.Log), apiLimit)
	api.POST("/products", products.CreateHandler(d.Catalog, d.Log), apiLimit, gate.RequireAuth)
	api.PATCH("/products/:id/stock", products.UpdateStockHandler(d.Catalog, d.Log), apiLimit, gate.RequireAuth)
}
