package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alluma/crm-backend/pkg/middleware"
	"github.com/alluma/crm-backend/pkg/models"
	"github.com/alluma/crm-backend/pkg/push"
)

// PushHandler handles web-push subscription storage.
type PushHandler struct {
	service *push.Service
}

// NewPushHandler creates a new push handler.
func NewPushHandler(service *push.Service) *PushHandler {
	return &PushHandler{service: service}
}

// Subscribe handles POST /api/push/subscribe.
func (h *PushHandler) Subscribe(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var req push.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	actor := middleware.ActorFrom(c)
	result, err := h.service.Subscribe(ctx, actor.ID, req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, result)
}

// List handles GET /api/push/subscriptions.
func (h *PushHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	actor := middleware.ActorFrom(c)
	result, err := h.service.ListByUser(ctx, actor.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// UnsubscribeRequest identifies the subscription to drop.
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

// Unsubscribe handles POST /api/push/unsubscribe.
func (h *PushHandler) Unsubscribe(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	actor := middleware.ActorFrom(c)
	if err := h.service.Unsubscribe(ctx, actor.ID, req.Endpoint); err != nil {
		if err.Error() == "subscription not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.OKResponse{OK: true, Message: "Suscripción eliminada"})
}
