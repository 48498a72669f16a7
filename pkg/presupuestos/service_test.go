package presupuestos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/enttest"
	"github.com/alluma/crm-backend/ent/schema"

	_ "github.com/mattn/go-sqlite3"
)

func newTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client), client
}

func TestCreate(t *testing.T) {
	t.Run("Entry with plans round-trips", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, err := svc.Create(context.Background(), SavePresupuestoRequest{
			Modelo:        "Cronos Precision",
			Marca:         "FIAT",
			PrecioContado: 25000000,
			PlanesCuotas: []schema.QuotePlan{
				{Nombre: "Plan 84", Cuotas: 84, MontoCuota: 350000},
			},
		}, 7)

		require.NoError(t, err)
		assert.True(t, created.Activo)
		assert.Equal(t, 7, created.CreatedBy)
		require.Len(t, created.PlanesCuotas, 1)
		assert.Equal(t, 84, created.PlanesCuotas[0].Cuotas)
	})

	t.Run("Missing modelo and marca rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(context.Background(), SavePresupuestoRequest{}, 7)

		require.Error(t, err)
		assert.Equal(t, "missing required fields: modelo, marca", err.Error())
	})
}

func TestList(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inactive := false
	_, err := svc.Create(ctx, SavePresupuestoRequest{Modelo: "Cronos", Marca: "FIAT"}, 7)
	require.NoError(t, err)
	hidden, err := svc.Create(ctx, SavePresupuestoRequest{
		Modelo: "Argo",
		Marca:  "FIAT",
		Activo: &inactive,
	}, 7)
	require.NoError(t, err)

	listed, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Cronos", listed[0].Modelo)

	// Inactive entries stay reachable by id
	got, err := svc.Get(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, got.Activo)
}

func TestUpdate(t *testing.T) {
	t.Run("Full replace", func(t *testing.T) {
		svc, _ := newTestService(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, SavePresupuestoRequest{
			Modelo:         "Cronos",
			Marca:          "FIAT",
			Bonificaciones: "Bonificación de lanzamiento",
		}, 7)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, SavePresupuestoRequest{
			Modelo:        "Cronos Drive",
			Marca:         "FIAT",
			PrecioContado: 27000000,
		})

		require.NoError(t, err)
		assert.Equal(t, "Cronos Drive", updated.Modelo)
		assert.Equal(t, 27000000.0, updated.PrecioContado)
		assert.Empty(t, updated.Bonificaciones)
		assert.True(t, updated.Activo)
	})

	t.Run("Unknown id rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Update(context.Background(), 404, SavePresupuestoRequest{
			Modelo: "Cronos",
			Marca:  "FIAT",
		})

		require.Error(t, err)
		assert.Equal(t, "presupuesto not found", err.Error())
	})
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, SavePresupuestoRequest{Modelo: "Cronos", Marca: "FIAT"}, 7)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "presupuesto not found", err.Error())

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "presupuesto not found", err.Error())
}
