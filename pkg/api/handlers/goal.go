package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alluma/crm-backend/pkg/goals"
	"github.com/alluma/crm-backend/pkg/models"
)

// GoalHandler handles monthly goal operations.
type GoalHandler struct {
	service *goals.Service
}

// NewGoalHandler creates a new goal handler.
func NewGoalHandler(service *goals.Service) *GoalHandler {
	return &GoalHandler{service: service}
}

// Upsert handles PUT /api/metas.
func (h *GoalHandler) Upsert(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req goals.UpsertGoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	result, err := h.service.Upsert(ctx, req)
	if err != nil {
		switch err.Error() {
		case "vendedor not found":
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		case "mes must be YYYY-MM", "targets cannot be negative":
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_failed",
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// ListByMonth handles GET /api/metas?mes=YYYY-MM.
func (h *GoalHandler) ListByMonth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	mes := c.QueryParam("mes")
	if mes == "" {
		mes = time.Now().Format("2006-01")
	}

	result, err := h.service.ListByMonth(ctx, mes)
	if err != nil {
		if err.Error() == "mes must be YYYY-MM" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_failed",
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}
