package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/enttest"
	"github.com/alluma/crm-backend/ent/user"
	"github.com/alluma/crm-backend/pkg/leads"
	"github.com/alluma/crm-backend/pkg/middleware"
	"github.com/alluma/crm-backend/pkg/roster"

	_ "github.com/mattn/go-sqlite3"
)

const testWebhookKey = "clave-secreta"

func newWebhookServer(t *testing.T) (*echo.Echo, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	leadSvc := leads.NewService(client, roster.NewService(client, nil), nil, "principal", "AR")
	h := NewWebhookHandler(leadSvc, "meta-token", nil)

	e := echo.New()
	g := e.Group("/api/webhooks")
	g.GET("/health", h.Health)
	g.GET("/whatsapp-lead", h.MetaVerify)
	g.POST("/whatsapp-lead", h.WhatsAppLead, middleware.WebhookKey(testWebhookKey))

	return e, client
}

func TestWhatsAppLead(t *testing.T) {
	t.Run("Missing key rejected", func(t *testing.T) {
		e, _ := newWebhookServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/whatsapp-lead",
			strings.NewReader(`{"nombre":"Ana","telefono":"+5491155550001","modelo":"Cronos"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid payload creates an assigned lead", func(t *testing.T) {
		e, client := newWebhookServer(t)

		agent, err := client.User.
			Create().
			SetName("Carla").
			SetEmail("carla@alluma.test").
			SetPasswordHash("x").
			SetRole(user.RoleVendedor).
			SetEquipo("principal").
			Save(t.Context())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/whatsapp-lead",
			strings.NewReader(`{"nombre":"Ana","telefono":"+5491155550001","modelo":"Cronos"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("X-Webhook-Key", testWebhookKey)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"fuente":"whatsapp"`)
		assert.Contains(t, rec.Body.String(), `"usuario":"Bot WhatsApp FIAT"`)

		stored, err := client.Lead.Query().Only(t.Context())
		require.NoError(t, err)
		require.NotNil(t, stored.AssignedTo)
		assert.Equal(t, agent.ID, *stored.AssignedTo)
	})

	t.Run("Incomplete payload rejected with field list", func(t *testing.T) {
		e, _ := newWebhookServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/whatsapp-lead",
			strings.NewReader(`{"nombre":"Ana"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("X-Webhook-Key", testWebhookKey)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "telefono")
	})
}

func TestMetaVerify(t *testing.T) {
	t.Run("Matching token echoes challenge", func(t *testing.T) {
		e, _ := newWebhookServer(t)

		req := httptest.NewRequest(http.MethodGet,
			"/api/webhooks/whatsapp-lead?hub.mode=subscribe&hub.verify_token=meta-token&hub.challenge=12345", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "12345", rec.Body.String())
	})

	t.Run("Wrong token rejected", func(t *testing.T) {
		e, _ := newWebhookServer(t)

		req := httptest.NewRequest(http.MethodGet,
			"/api/webhooks/whatsapp-lead?hub.mode=subscribe&hub.verify_token=otro&hub.challenge=12345", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestWebhookHealth(t *testing.T) {
	e, _ := newWebhookServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/webhooks/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
