package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func webhookServer(secret string) *echo.Echo {
	e := echo.New()
	e.POST("/hook", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, WebhookKey(secret))
	return e
}

func TestWebhookKey(t *testing.T) {
	t.Run("Valid key passes", func(t *testing.T) {
		e := webhookServer("secreto")

		req := httptest.NewRequest(http.MethodPost, "/hook", nil)
		req.Header.Set("X-Webhook-Key", "secreto")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Wrong key rejected", func(t *testing.T) {
		e := webhookServer("secreto")

		req := httptest.NewRequest(http.MethodPost, "/hook", nil)
		req.Header.Set("X-Webhook-Key", "otra-clave")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Unconfigured secret disables endpoint", func(t *testing.T) {
		e := webhookServer("")

		req := httptest.NewRequest(http.MethodPost, "/hook", nil)
		req.Header.Set("X-Webhook-Key", "")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
