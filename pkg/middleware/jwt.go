package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/pkg/auth"
	"github.com/alluma/crm-backend/pkg/models"
)

const actorKey = "actor"

// JWTAuth validates the Bearer token and loads the acting user into the
// request context for handlers and audit labels.
func JWTAuth(db *ent.Client, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Missing bearer token",
				})
			}

			claims, err := auth.ValidateJWT(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Invalid or expired token",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			u, err := db.User.Get(ctx, claims.UserID)
			if err != nil || !u.Active {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Account unavailable",
				})
			}

			c.Set(actorKey, &models.Actor{
				ID:   u.ID,
				Name: u.Name,
				Role: string(u.Role),
			})

			return next(c)
		}
	}
}

// ActorFrom returns the authenticated actor, or nil for keyed (webhook)
// requests that carry no user.
func ActorFrom(c echo.Context) *models.Actor {
	actor, _ := c.Get(actorKey).(*models.Actor)
	return actor
}

// SetActor stores an actor on the context; used by the webhook key
// middleware to label bot intake.
func SetActor(c echo.Context, actor *models.Actor) {
	c.Set(actorKey, actor)
}
