package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alluma/crm-backend/pkg/models"
)

// RequireRole ensures the authenticated actor holds one of the given
// roles. Apply after JWTAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := ActorFrom(c)
			if actor == nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required",
				})
			}

			if !allowed[actor.Role] {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "insufficient_permissions",
					Message: "Your role cannot perform this action",
				})
			}

			return next(c)
		}
	}
}
