// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"

	"github.com/labstack/echo/v4"
)

const pingKey = "health:ping"

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.Response
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Response{Msg: "database unhealthy"})
		}
		// 寫入後讀回，確認 Redis 可讀可寫
		if err := cch.Set(ctx, pingKey, "pong", 10*time.Second).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Response{Msg: "cache unhealthy"})
		}
		if v, err := cch.Get(ctx, pingKey).Result(); err != nil || v != "pong" {
			return c.JSON(http.StatusInternalServerError, api.Response{Msg: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
