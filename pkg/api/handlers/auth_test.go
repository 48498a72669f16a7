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
	"github.com/alluma/crm-backend/pkg/auth"

	_ "github.com/mattn/go-sqlite3"
)

func newLoginServer(t *testing.T) (*echo.Echo, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	h := NewAuthHandler(client, "test-secret", 24, nil)

	e := echo.New()
	e.POST("/api/auth/login", h.Login)

	return e, client
}

func createAccount(t *testing.T, client *ent.Client, email, password string, active bool) {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	_, err = client.User.
		Create().
		SetName("Carla").
		SetEmail(email).
		SetPasswordHash(hash).
		SetRole(user.RoleVendedor).
		SetEquipo("principal").
		SetActive(active).
		Save(t.Context())
	require.NoError(t, err)
}

func postLogin(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	t.Run("Correct credentials issue a token", func(t *testing.T) {
		e, client := newLoginServer(t)
		createAccount(t, client, "carla@alluma.test", "secreto123", true)

		rec := postLogin(e, `{"email":"carla@alluma.test","password":"secreto123"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"`)
		assert.Contains(t, rec.Body.String(), `"email":"carla@alluma.test"`)
	})

	t.Run("Email lookup ignores case", func(t *testing.T) {
		e, client := newLoginServer(t)
		createAccount(t, client, "carla@alluma.test", "secreto123", true)

		rec := postLogin(e, `{"email":"Carla@Alluma.test","password":"secreto123"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Wrong password rejected", func(t *testing.T) {
		e, client := newLoginServer(t)
		createAccount(t, client, "carla@alluma.test", "secreto123", true)

		rec := postLogin(e, `{"email":"carla@alluma.test","password":"otra-clave"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_credentials")
	})

	t.Run("Inactive account rejected with the same answer", func(t *testing.T) {
		e, client := newLoginServer(t)
		createAccount(t, client, "baja@alluma.test", "secreto123", false)

		rec := postLogin(e, `{"email":"baja@alluma.test","password":"secreto123"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_credentials")
	})

	t.Run("Unknown email rejected with the same answer", func(t *testing.T) {
		e, _ := newLoginServer(t)

		rec := postLogin(e, `{"email":"nadie@alluma.test","password":"secreto123"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_credentials")
	})
}
