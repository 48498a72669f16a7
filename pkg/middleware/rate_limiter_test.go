package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 2)
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, rl.Middleware())

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("Burst allowed, then limited", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
		assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))
	})

	t.Run("Limits are per IP", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, hit("10.0.0.2"))
	})
}
