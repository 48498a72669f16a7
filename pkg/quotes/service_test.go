package quotes

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

func createLead(t *testing.T, client *ent.Client) *ent.Lead {
	l, err := client.Lead.
		Create().
		SetNombre("Cliente").
		SetTelefono("+5491155550001").
		SetModelo("Cronos").
		SetFecha("2026-08-31").
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func TestCreate(t *testing.T) {
	t.Run("Quote with plans round-trips", func(t *testing.T) {
		svc, client := newTestService(t)
		l := createLead(t, client)

		created, err := svc.Create(context.Background(), CreateQuoteRequest{
			LeadID:        l.ID,
			Vehiculo:      "Cronos Precision",
			PrecioContado: 25000000,
			Planes: []schema.QuotePlan{
				{Nombre: "Plan 84", Cuotas: 84, MontoCuota: 350000},
			},
		}, 7)

		require.NoError(t, err)
		assert.Equal(t, 7, created.CreatedBy)
		require.Len(t, created.Planes, 1)
		assert.Equal(t, 84, created.Planes[0].Cuotas)

		listed, err := svc.ListByLead(context.Background(), l.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "Plan 84", listed[0].Planes[0].Nombre)
	})

	t.Run("Unknown lead rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(context.Background(), CreateQuoteRequest{
			LeadID:        404,
			Vehiculo:      "Cronos",
			PrecioContado: 1,
		}, 7)

		require.Error(t, err)
		assert.Equal(t, "lead not found", err.Error())
	})

	t.Run("Non-positive price rejected", func(t *testing.T) {
		svc, client := newTestService(t)
		l := createLead(t, client)

		_, err := svc.Create(context.Background(), CreateQuoteRequest{
			LeadID:   l.ID,
			Vehiculo: "Cronos",
		}, 7)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "preciocontado")
	})
}

func TestStatsByUser(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	l := createLead(t, client)

	for _, precio := range []float64{100, 300} {
		_, err := svc.Create(ctx, CreateQuoteRequest{
			LeadID:        l.ID,
			Vehiculo:      "Cronos",
			PrecioContado: precio,
		}, 7)
		require.NoError(t, err)
	}

	stats, err := svc.StatsByUser(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 200.0, stats.PromedioPrecio)

	empty, err := svc.StatsByUser(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
}
