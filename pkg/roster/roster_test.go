package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/enttest"
	"github.com/alluma/crm-backend/ent/user"

	_ "github.com/mattn/go-sqlite3"
)

func newTestClient(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
}

func createUser(t *testing.T, client *ent.Client, name string, role user.Role, active bool, equipo string) *ent.User {
	u, err := client.User.
		Create().
		SetName(name).
		SetEmail(name + "@alluma.test").
		SetPasswordHash("x").
		SetRole(role).
		SetActive(active).
		SetEquipo(equipo).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestResolve(t *testing.T) {
	t.Run("Active vendedores and owners in id order", func(t *testing.T) {
		client := newTestClient(t)
		defer client.Close()

		carla := createUser(t, client, "Carla", user.RoleVendedor, true, "principal")
		martin := createUser(t, client, "Martín", user.RoleOwner, true, "principal")
		createUser(t, client, "Gerente", user.RoleGerente, true, "principal")
		createUser(t, client, "Inactivo", user.RoleVendedor, false, "principal")
		createUser(t, client, "OtroEquipo", user.RoleVendedor, true, "usados")

		svc := NewService(client, nil)
		agents, err := svc.Resolve(context.Background(), "principal")

		require.NoError(t, err)
		require.Len(t, agents, 2)
		assert.Equal(t, carla.ID, agents[0].ID)
		assert.Equal(t, "Carla", agents[0].Name)
		assert.Equal(t, martin.ID, agents[1].ID)
	})

	t.Run("Empty pool is not an error", func(t *testing.T) {
		client := newTestClient(t)
		defer client.Close()

		svc := NewService(client, nil)
		agents, err := svc.Resolve(context.Background(), "principal")

		require.NoError(t, err)
		assert.Empty(t, agents)
	})

	t.Run("Override list bypasses role and active filters", func(t *testing.T) {
		client := newTestClient(t)
		defer client.Close()

		inactive := createUser(t, client, "Inactivo", user.RoleVendedor, false, "principal")
		gerente := createUser(t, client, "Gerente", user.RoleGerente, true, "otro")
		createUser(t, client, "NoListado", user.RoleVendedor, true, "principal")

		svc := NewService(client, map[string][]int{
			"sheets": {gerente.ID, inactive.ID},
		})
		agents, err := svc.Resolve(context.Background(), "sheets")

		require.NoError(t, err)
		require.Len(t, agents, 2)
		assert.Equal(t, inactive.ID, agents[0].ID)
		assert.Equal(t, gerente.ID, agents[1].ID)
	})

	t.Run("Override ids missing from the users table are skipped", func(t *testing.T) {
		client := newTestClient(t)
		defer client.Close()

		carla := createUser(t, client, "Carla", user.RoleVendedor, true, "principal")

		svc := NewService(client, map[string][]int{
			"sheets": {carla.ID, 9999},
		})
		agents, err := svc.Resolve(context.Background(), "sheets")

		require.NoError(t, err)
		require.Len(t, agents, 1)
		assert.Equal(t, carla.ID, agents[0].ID)
	})
}
