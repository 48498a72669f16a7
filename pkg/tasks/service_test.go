package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/enttest"
	"github.com/alluma/crm-backend/pkg/leads"
	"github.com/alluma/crm-backend/pkg/roster"

	_ "github.com/mattn/go-sqlite3"
)

func newTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	leadSvc := leads.NewService(client, roster.NewService(client, nil), nil, "principal", "AR")
	return NewService(leadSvc), client
}

func createAgedLead(t *testing.T, client *ent.Client, nombre, estado string, age time.Duration) *ent.Lead {
	l, err := client.Lead.
		Create().
		SetNombre(nombre).
		SetTelefono("+5491155550001").
		SetModelo("Cronos").
		SetEstado(estado).
		SetFecha("2026-08-31").
		SetLastStatusChange(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func TestDerive(t *testing.T) {
	cases := []struct {
		estado  string
		waited  time.Duration
		tipo    string
		urgente bool
		due     bool
	}{
		{"nuevo", 3 * time.Hour, TipoLlamar, true, true},
		{"nuevo", 1 * time.Hour, "", false, false},
		{"contactado", 25 * time.Hour, TipoWhatsapp, false, true},
		{"interesado", 49 * time.Hour, TipoCotizar, false, true},
		{"negociacion", 25 * time.Hour, TipoSeguimiento, true, true},
		{"no_contesta_2", 25 * time.Hour, TipoLlamar, false, true},
		{"no_contesta_3", 49 * time.Hour, TipoLlamar, true, true},
		{"vendido", 1000 * time.Hour, "", false, false},
	}

	for _, tc := range cases {
		r, ok := derive(tc.estado, tc.waited)

		assert.Equal(t, tc.due, ok, "estado %s waited %s", tc.estado, tc.waited)
		if tc.due {
			assert.Equal(t, tc.tipo, r.tipo)
			assert.Equal(t, tc.urgente, r.urgente)
		}
	}
}

func TestList(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createAgedLead(t, client, "Atrasado", "nuevo", 3*time.Hour)
	createAgedLead(t, client, "Fresco", "nuevo", 30*time.Minute)
	createAgedLead(t, client, "Vendido", "vendido", 200*time.Hour)

	tasks, err := svc.List(ctx, nil)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Atrasado", tasks[0].LeadNombre)
	assert.Equal(t, TipoLlamar, tasks[0].Tipo)
	assert.True(t, tasks[0].Urgente)
	assert.Greater(t, tasks[0].HorasEspera, 2.0)
}

func TestListFallsBackToCreatedAt(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	// No last_status_change recorded; age is measured from creation.
	_, err := client.Lead.
		Create().
		SetNombre("Viejo").
		SetTelefono("+5491155550001").
		SetModelo("Cronos").
		SetEstado("contactado").
		SetFecha("2026-08-31").
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	tasks, err := svc.List(ctx, nil)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, TipoWhatsapp, tasks[0].Tipo)
}

func TestUrgent(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createAgedLead(t, client, "Urgente", "negociacion", 30*time.Hour)
	createAgedLead(t, client, "Tranquilo", "contactado", 30*time.Hour)

	urgent, err := svc.Urgent(ctx, nil)

	require.NoError(t, err)
	require.Len(t, urgent, 1)
	assert.Equal(t, "Urgente", urgent[0].LeadNombre)
}
