package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/user"
	"github.com/alluma/crm-backend/pkg/auth"
	"github.com/alluma/crm-backend/pkg/metrics"
	"github.com/alluma/crm-backend/pkg/models"
	"github.com/alluma/crm-backend/pkg/users"
)

// AuthHandler handles authentication.
type AuthHandler struct {
	db              *ent.Client
	jwtSecret       string
	expirationHours int
	metrics         *metrics.Metrics
}

// NewAuthHandler creates a new auth handler. m may be nil in tests.
func NewAuthHandler(db *ent.Client, jwtSecret string, expirationHours int, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:              db,
		jwtSecret:       jwtSecret,
		expirationHours: expirationHours,
		metrics:         m,
	}
}

// LoginRequest represents login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the account it belongs to.
type LoginResponse struct {
	Token string             `json:"token"`
	User  users.UserResponse `json:"user"`
}

// Login verifies credentials and issues a JWT.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	u, err := h.db.User.
		Query().
		Where(user.Email(strings.ToLower(req.Email))).
		Only(ctx)
	if err != nil || !u.Active || !auth.CheckPassword(u.PasswordHash, req.Password) {
		if h.metrics != nil {
			h.metrics.RecordLoginAttempt(false)
		}
		// Same answer for unknown email, inactive account and bad
		// password, so the endpoint does not leak which one failed.
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Email o contraseña incorrectos",
		})
	}

	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(true)
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, string(u.Role), h.jwtSecret, h.expirationHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to issue token",
		})
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User: users.UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      string(u.Role),
			Equipo:    u.Equipo,
			Active:    u.Active,
			ReportsTo: u.ReportsTo,
		},
	})
}
