package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	require.Equal(t, logrus.InfoLevel, New("nonsense").GetLevel())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithOutput("info", &buf)

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "request", line["msg"])
	require.Equal(t, "/ok", line["uri"])
	require.EqualValues(t, http.StatusOK, line["status"])
}
