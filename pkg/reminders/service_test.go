package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/enttest"

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
	t.Run("Missing fields rejected", func(t *testing.T) {
		svc, client := newTestService(t)
		l := createLead(t, client)

		_, err := svc.Create(context.Background(), CreateReminderRequest{
			LeadID: l.ID,
			Fecha:  "2026-08-31",
		})

		require.Error(t, err)
		assert.Equal(t, "missing required fields: hora, descripcion", err.Error())
	})

	t.Run("Malformed date rejected", func(t *testing.T) {
		svc, client := newTestService(t)
		l := createLead(t, client)

		_, err := svc.Create(context.Background(), CreateReminderRequest{
			LeadID:      l.ID,
			Fecha:       "31/08/2026",
			Hora:        "10:30",
			Descripcion: "Llamar",
		})

		require.Error(t, err)
		assert.Equal(t, "fecha must be YYYY-MM-DD", err.Error())
	})

	t.Run("Malformed time rejected", func(t *testing.T) {
		svc, client := newTestService(t)
		l := createLead(t, client)

		_, err := svc.Create(context.Background(), CreateReminderRequest{
			LeadID:      l.ID,
			Fecha:       "2026-08-31",
			Hora:        "10.30hs",
			Descripcion: "Llamar",
		})

		require.Error(t, err)
		assert.Equal(t, "hora must be HH:MM", err.Error())
	})

	t.Run("Unknown lead rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(context.Background(), CreateReminderRequest{
			LeadID:      404,
			Fecha:       "2026-08-31",
			Hora:        "10:30",
			Descripcion: "Llamar",
		})

		require.Error(t, err)
		assert.Equal(t, "lead not found", err.Error())
	})
}

func TestAgenda(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	l := createLead(t, client)

	today := time.Now().Format("2006-01-02")
	mk := func(hora, desc string) *ReminderResponse {
		r, err := svc.Create(ctx, CreateReminderRequest{
			LeadID:      l.ID,
			Fecha:       today,
			Hora:        hora,
			Descripcion: desc,
		})
		require.NoError(t, err)
		return r
	}

	mk("14:00", "Llamar por la tarde")
	early := mk("09:00", "Llamar temprano")
	done := mk("11:00", "Ya resuelto")
	require.NoError(t, svc.Complete(ctx, done.ID))

	_, err := svc.Create(ctx, CreateReminderRequest{
		LeadID:      l.ID,
		Fecha:       "2030-01-01",
		Hora:        "10:00",
		Descripcion: "Futuro lejano",
	})
	require.NoError(t, err)

	agenda, err := svc.Agenda(ctx, "")

	require.NoError(t, err)
	require.Len(t, agenda, 2)
	assert.Equal(t, early.ID, agenda[0].ID)
	assert.Equal(t, "Cliente", agenda[0].LeadNombre)
	assert.Equal(t, "+5491155550001", agenda[0].Telefono)
}
