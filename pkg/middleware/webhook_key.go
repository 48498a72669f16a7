package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alluma/crm-backend/pkg/models"
)

// WebhookKey guards machine intake endpoints with a shared secret in the
// X-Webhook-Key header. When no secret is configured the endpoints are
// disabled rather than left open.
func WebhookKey(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
					Error:   "webhooks_disabled",
					Message: "Webhook intake is not configured",
				})
			}

			key := c.Request().Header.Get("X-Webhook-Key")
			if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Invalid webhook key",
				})
			}

			return next(c)
		}
	}
}
