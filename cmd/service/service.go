// @title        Storefront API
// @version      1.0
// @description  服飾商店後端 API：會員驗證與商品目錄
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name jwt
package main

import (
	"context"
	"fmt"
	"os"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handler/auth"
	"storefront/internal/logging"
	appmw "storefront/internal/middleware"
	"storefront/internal/router"
	"storefront/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "storefront/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	logger := newLogger(cfg.LogLevel)

	ipExtractor, err := appmw.ClientIPExtractor(cfg.TrustedProxies)
	if err != nil {
		return fmt.Errorf("TRUSTED_PROXIES 設定錯誤: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)

	e := echo.New()
	e.HideBanner = true
	e.IPExtractor = ipExtractor
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.IsDevelopment()
	e.Use(middleware.Recover())
	e.Use(logging.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PATCH, echo.OPTIONS},
		AllowCredentials: true,
	}))

	router.Setup(e, router.Deps{
		DB:      db,
		Cache:   redis,
		Auth:    service.NewAuthService(db, tokens, cfg.BcryptCost),
		Catalog: service.NewCatalogService(db),
		Cookies: auth.CookieConfig{Secure: !cfg.IsDevelopment(), TTL: cfg.SessionTTL},
		Log:     logger,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.WithFields(logrus.Fields{"addr": cfg.HTTPAddr, "env": cfg.Env}).Info("server starting")
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("service stopped")
		exitFunc(1)
	}
}
