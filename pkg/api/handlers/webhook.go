package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alluma/crm-backend/pkg/leads"
	"github.com/alluma/crm-backend/pkg/metrics"
	"github.com/alluma/crm-backend/pkg/models"
)

// WebhookHandler receives machine-generated leads from the WhatsApp bot
// and other integrations. Authentication is the X-Webhook-Key middleware.
type WebhookHandler struct {
	service     *leads.Service
	verifyToken string
	metrics     *metrics.Metrics
}

// NewWebhookHandler creates a new webhook handler. m may be nil in tests.
func NewWebhookHandler(service *leads.Service, verifyToken string, m *metrics.Metrics) *WebhookHandler {
	return &WebhookHandler{service: service, verifyToken: verifyToken, metrics: m}
}

// botActor labels webhook intake in the history log.
var botActor = &models.Actor{Name: "Bot WhatsApp FIAT"}

// WhatsAppLead handles POST /api/webhooks/whatsapp-lead.
func (h *WebhookHandler) WhatsAppLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req leads.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if req.Fuente == "" {
		req.Fuente = "whatsapp"
	}

	result, err := h.service.Create(ctx, req, botActor)
	if err != nil {
		if strings.HasPrefix(err.Error(), "missing required fields") {
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

	if h.metrics != nil {
		h.metrics.RecordLeadCreated(result.Fuente, result.Vendedor != nil, result.Equipo)
	}

	return c.JSON(http.StatusCreated, result)
}

// MetaVerify handles GET /api/webhooks/whatsapp-lead, the Meta platform
// subscription handshake: echo hub.challenge when the token matches.
func (h *WebhookHandler) MetaVerify(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode == "subscribe" && h.verifyToken != "" && token == h.verifyToken {
		return c.String(http.StatusOK, challenge)
	}

	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "verification_failed",
		Message: "Invalid verify token",
	})
}

// Health handles GET /api/webhooks/health for the bot's liveness check.
func (h *WebhookHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
