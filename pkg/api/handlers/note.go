package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alluma/crm-backend/pkg/middleware"
	"github.com/alluma/crm-backend/pkg/models"
	"github.com/alluma/crm-backend/pkg/notes"
)

// NoteHandler handles internal note operations.
type NoteHandler struct {
	service *notes.Service
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(service *notes.Service) *NoteHandler {
	return &NoteHandler{service: service}
}

// CreateNoteRequest is the note payload; the lead comes from the path.
type CreateNoteRequest struct {
	Texto string `json:"texto"`
}

// Create handles POST /api/leads/:id/notas.
func (h *NoteHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_lead_id",
			Message: "Lead ID must be a valid number",
		})
	}

	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	result, err := h.service.Create(ctx, leadID, req.Texto, middleware.ActorFrom(c))
	if err != nil {
		if err.Error() == "lead not found" {
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

	return c.JSON(http.StatusCreated, result)
}

// ListByLead handles GET /api/leads/:id/notas.
func (h *NoteHandler) ListByLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_lead_id",
			Message: "Lead ID must be a valid number",
		})
	}

	result, err := h.service.ListByLead(ctx, leadID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /api/notas/:id.
func (h *NoteHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_note_id",
			Message: "Note ID must be a valid number",
		})
	}

	if err := h.service.Delete(ctx, id, middleware.ActorFrom(c)); err != nil {
		switch err.Error() {
		case "note not found":
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		case "not allowed to delete this note":
			return c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error:   "insufficient_permissions",
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.OKResponse{OK: true, Message: "Nota eliminada"})
}
