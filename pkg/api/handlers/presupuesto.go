package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alluma/crm-backend/pkg/middleware"
	"github.com/alluma/crm-backend/pkg/models"
	"github.com/alluma/crm-backend/pkg/presupuestos"
)

// PresupuestoHandler handles the price-list catalog.
type PresupuestoHandler struct {
	service *presupuestos.Service
}

// NewPresupuestoHandler creates a new presupuesto handler.
func NewPresupuestoHandler(service *presupuestos.Service) *PresupuestoHandler {
	return &PresupuestoHandler{service: service}
}

// List handles GET /api/presupuestos.
func (h *PresupuestoHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// Get handles GET /api/presupuestos/:id.
func (h *PresupuestoHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_presupuesto_id",
			Message: "Presupuesto ID must be a valid number",
		})
	}

	result, err := h.service.Get(ctx, id)
	if err != nil {
		if err.Error() == "presupuesto not found" {
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

	return c.JSON(http.StatusOK, result)
}

// Create handles POST /api/presupuestos.
func (h *PresupuestoHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req presupuestos.SavePresupuestoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	actor := middleware.ActorFrom(c)
	result, err := h.service.Create(ctx, req, actor.ID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, result)
}

// Update handles PUT /api/presupuestos/:id.
func (h *PresupuestoHandler) Update(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_presupuesto_id",
			Message: "Presupuesto ID must be a valid number",
		})
	}

	var req presupuestos.SavePresupuestoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	result, err := h.service.Update(ctx, id, req)
	if err != nil {
		if err.Error() == "presupuesto not found" {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /api/presupuestos/:id.
func (h *PresupuestoHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_presupuesto_id",
			Message: "Presupuesto ID must be a valid number",
		})
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if err.Error() == "presupuesto not found" {
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

	return c.JSON(http.StatusOK, models.OKResponse{OK: true, Message: "Presupuesto eliminado correctamente"})
}
