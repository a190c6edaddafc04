// File: internal/handler/errors.go
package handler

import (
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatusOf 將服務層錯誤分類對應到 HTTP 狀態碼
func StatusOf(kind service.Kind) int {
	switch kind {
	case service.Validation, service.InvalidCategory, service.AlreadyAdmin:
		return http.StatusBadRequest
	case service.Unauthenticated, service.InvalidCredentials:
		return http.StatusUnauthorized
	case service.Forbidden:
		return http.StatusForbidden
	case service.NotFound:
		return http.StatusNotFound
	case service.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError 統一輸出錯誤回應；Internal 只記錄原因，不回傳內部細節
func WriteError(c echo.Context, log logrus.FieldLogger, err error) error {
	kind := service.KindOf(err)
	status := StatusOf(kind)
	resp := api.Response{Msg: service.MessageOf(err)}

	var se *service.Error
	if errors.As(err, &se) && kind == service.Validation && se.Err != nil {
		resp.Error = se.Err.Error()
	}
	if status == http.StatusInternalServerError {
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
		}).Error("request failed")
	}
	return c.JSON(status, resp)
}

// Bind 解析並驗證請求 body，失敗時回傳 Validation 錯誤
func Bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return &service.Error{Kind: service.Validation, Msg: "Validation error", Err: bindCause(err)}
	}
	if err := c.Validate(req); err != nil {
		return &service.Error{Kind: service.Validation, Msg: "Validation error", Err: err}
	}
	return nil
}

func bindCause(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return errors.New(msg)
		}
	}
	return err
}
