package errors

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_StructuredErrorBecomesJSON(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/fail", func(c echo.Context) error {
		return ExternalError("upstream unavailable", stderrors.New("dial tcp: refused"))
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"upstream unavailable","type":"external"}`, rec.Body.String())
}

func TestMiddleware_PlainErrorBecomesInternal(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/fail", func(c echo.Context) error {
		return stderrors.New("something broke")
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"internal"`)
	assert.NotContains(t, rec.Body.String(), "something broke", "cause is logged, not exposed")
}

func TestMiddleware_EchoHTTPErrorPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMiddleware_SuccessUntouched(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
}
