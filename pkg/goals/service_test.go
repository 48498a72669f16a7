package goals

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

func newTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client), client
}

func createVendedor(t *testing.T, client *ent.Client) *ent.User {
	u, err := client.User.
		Create().
		SetName("Ana").
		SetEmail("ana@alluma.test").
		SetPasswordHash("x").
		SetRole(user.RoleVendedor).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createLead(t *testing.T, client *ent.Client, vendedorID int, estado, fecha string) {
	_, err := client.Lead.
		Create().
		SetNombre("Cliente").
		SetTelefono("+5491155550001").
		SetModelo("Cronos").
		SetEstado(estado).
		SetFecha(fecha).
		SetAssignedTo(vendedorID).
		Save(context.Background())
	require.NoError(t, err)
}

func TestUpsert(t *testing.T) {
	t.Run("Invalid month format rejected", func(t *testing.T) {
		svc, client := newTestService(t)
		v := createVendedor(t, client)

		for _, mes := range []string{"2026-13", "08-2026", "2026/08", "agosto"} {
			_, err := svc.Upsert(context.Background(), UpsertGoalRequest{
				VendedorID: v.ID,
				Mes:        mes,
				MetaVentas: 5,
			})
			require.Error(t, err, "mes %q", mes)
			assert.Equal(t, "mes must be YYYY-MM", err.Error())
		}
	})

	t.Run("Second upsert replaces, not duplicates", func(t *testing.T) {
		svc, client := newTestService(t)
		ctx := context.Background()
		v := createVendedor(t, client)

		first, err := svc.Upsert(ctx, UpsertGoalRequest{VendedorID: v.ID, Mes: "2026-08", MetaVentas: 5, MetaLeads: 20})
		require.NoError(t, err)

		second, err := svc.Upsert(ctx, UpsertGoalRequest{VendedorID: v.ID, Mes: "2026-08", MetaVentas: 8, MetaLeads: 30})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 8, second.MetaVentas)

		total, err := client.Goal.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("Unknown vendedor rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Upsert(context.Background(), UpsertGoalRequest{VendedorID: 404, Mes: "2026-08"})

		require.Error(t, err)
		assert.Equal(t, "vendedor not found", err.Error())
	})
}

func TestProgress(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	v := createVendedor(t, client)

	createLead(t, client, v.ID, "vendido", "2026-08-05")
	createLead(t, client, v.ID, "vendido", "2026-08-20")
	createLead(t, client, v.ID, "nuevo", "2026-08-25")
	createLead(t, client, v.ID, "vendido", "2026-07-30")

	goal, err := svc.Upsert(ctx, UpsertGoalRequest{VendedorID: v.ID, Mes: "2026-08", MetaVentas: 5, MetaLeads: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, goal.VentasReales)
	assert.Equal(t, 3, goal.LeadsReales)
}
