package leads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/enttest"
	"github.com/alluma/crm-backend/ent/user"
	"github.com/alluma/crm-backend/pkg/models"
	"github.com/alluma/crm-backend/pkg/roster"

	_ "github.com/mattn/go-sqlite3"
)

func newTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := NewService(client, roster.NewService(client, nil), nil, "principal", "AR")
	return svc, client
}

func createAgent(t *testing.T, client *ent.Client, name, equipo string) *ent.User {
	u, err := client.User.
		Create().
		SetName(name).
		SetEmail(name + "@alluma.test").
		SetPasswordHash("x").
		SetRole(user.RoleVendedor).
		SetEquipo(equipo).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func intakeRequest(nombre string) CreateLeadRequest {
	return CreateLeadRequest{
		Nombre:   nombre,
		Telefono: "+5491155550001",
		Modelo:   "Cronos",
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateLeadRequest{Nombre: "Ana"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
	assert.Contains(t, err.Error(), "telefono")
	assert.Contains(t, err.Error(), "modelo")
}

func TestCreateRoundRobinFairness(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	a := createAgent(t, client, "Ana", "principal")
	b := createAgent(t, client, "Bruno", "principal")
	c := createAgent(t, client, "Carla", "principal")

	counts := map[int]int{}
	var visited []int
	for i := 0; i < 8; i++ {
		resp, err := svc.Create(ctx, intakeRequest("Lead"), nil)
		require.NoError(t, err)
		require.NotNil(t, resp.Vendedor)

		counts[*resp.Vendedor]++
		visited = append(visited, *resp.Vendedor)
	}

	assert.Equal(t, []int{a.ID, b.ID, c.ID, a.ID, b.ID, c.ID, a.ID, b.ID}, visited)
	assert.Equal(t, 3, counts[a.ID])
	assert.Equal(t, 3, counts[b.ID])
	assert.Equal(t, 2, counts[c.ID])
}

// The cursor is derived from stored leads, so a fresh service picks up the
// rotation exactly where the previous one left off.
func TestCursorSurvivesRestart(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	a := createAgent(t, client, "Ana", "principal")
	b := createAgent(t, client, "Bruno", "principal")

	first, err := svc.Create(ctx, intakeRequest("Lead 1"), nil)
	require.NoError(t, err)
	assert.Equal(t, a.ID, *first.Vendedor)

	restarted := NewService(client, roster.NewService(client, nil), nil, "principal", "AR")
	second, err := restarted.Create(ctx, intakeRequest("Lead 2"), nil)
	require.NoError(t, err)
	assert.Equal(t, b.ID, *second.Vendedor)
}

func TestStaleCursorFallsBackToFirstAgent(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	a := createAgent(t, client, "Ana", "principal")
	b := createAgent(t, client, "Bruno", "principal")

	// Advance the cursor onto Bruno, then deactivate him.
	_, err := svc.Create(ctx, intakeRequest("Lead 1"), nil)
	require.NoError(t, err)
	resp, err := svc.Create(ctx, intakeRequest("Lead 2"), nil)
	require.NoError(t, err)
	require.Equal(t, b.ID, *resp.Vendedor)

	_, err = client.User.UpdateOneID(b.ID).SetActive(false).Save(ctx)
	require.NoError(t, err)

	next, err := svc.Create(ctx, intakeRequest("Lead 3"), nil)
	require.NoError(t, err)
	assert.Equal(t, a.ID, *next.Vendedor)
}

func TestEmptyRosterLeavesLeadUnassigned(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Create(context.Background(), intakeRequest("Lead"), nil)

	require.NoError(t, err)
	assert.Nil(t, resp.Vendedor)
	require.Len(t, resp.Historial, 1)
	assert.Equal(t, "nuevo", resp.Historial[0].Estado)
	assert.Equal(t, "Sistema", resp.Historial[0].Usuario)
}

func TestPoolsRotateIndependently(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	a := createAgent(t, client, "Ana", "principal")
	b := createAgent(t, client, "Bruno", "principal")
	u1 := createAgent(t, client, "Diego", "usados")
	u2 := createAgent(t, client, "Elena", "usados")

	resp, err := svc.Create(ctx, intakeRequest("Lead 1"), nil)
	require.NoError(t, err)
	assert.Equal(t, a.ID, *resp.Vendedor)

	usados := intakeRequest("Lead 2")
	usados.Equipo = "usados"
	resp, err = svc.Create(ctx, usados, nil)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, *resp.Vendedor)

	// Each pool continues its own rotation, unaffected by the other.
	resp, err = svc.Create(ctx, intakeRequest("Lead 3"), nil)
	require.NoError(t, err)
	assert.Equal(t, b.ID, *resp.Vendedor)

	usados.Nombre = "Lead 4"
	resp, err = svc.Create(ctx, usados, nil)
	require.NoError(t, err)
	assert.Equal(t, u2.ID, *resp.Vendedor)
}

func TestExplicitVendedorBypassesSelector(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createAgent(t, client, "Ana", "principal")
	b := createAgent(t, client, "Bruno", "principal")
	c := createAgent(t, client, "Carla", "principal")

	req := intakeRequest("Lead pinned")
	req.Vendedor = &b.ID
	resp, err := svc.Create(ctx, req, nil)
	require.NoError(t, err)
	assert.Equal(t, b.ID, *resp.Vendedor)

	// The pinned assignment becomes the cursor for the next automatic pick.
	next, err := svc.Create(ctx, intakeRequest("Lead auto"), nil)
	require.NoError(t, err)
	assert.Equal(t, c.ID, *next.Vendedor)
}

func TestCreateHistorySeeding(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createAgent(t, client, "Ana", "principal")
	actor := &models.Actor{ID: 99, Name: "Carla", Role: "gerente"}

	resp, err := svc.Create(ctx, intakeRequest("Lead"), actor)

	require.NoError(t, err)
	require.Len(t, resp.Historial, 2)
	assert.Equal(t, "nuevo", resp.Historial[0].Estado)
	assert.Equal(t, "Carla", resp.Historial[0].Usuario)
	assert.Equal(t, "Asignado automáticamente a Ana (Round Robin)", resp.Historial[1].Estado)
	assert.Equal(t, "Sistema", resp.Historial[1].Usuario)
}

func TestUpdate(t *testing.T) {
	t.Run("Status change before reassignment in history", func(t *testing.T) {
		svc, client := newTestService(t)
		ctx := context.Background()

		createAgent(t, client, "Ana", "principal")
		dest := createAgent(t, client, "Bruno", "principal")

		created, err := svc.Create(ctx, intakeRequest("Lead"), nil)
		require.NoError(t, err)

		estado := "contactado"
		patch := UpdateLeadRequest{
			Estado:   &estado,
			Vendedor: OptionalInt{Set: true, Value: &dest.ID},
		}
		actor := &models.Actor{ID: 1, Name: "Carla", Role: "gerente"}
		updated, err := svc.Update(ctx, created.ID, patch, actor)
		require.NoError(t, err)

		require.Len(t, updated.Historial, 4)
		assert.Equal(t, "contactado", updated.Historial[2].Estado)
		assert.Equal(t, "Reasignado a Bruno", updated.Historial[3].Estado)
		assert.Equal(t, "Carla", updated.Historial[3].Usuario)
		assert.Equal(t, dest.ID, *updated.Vendedor)
		require.NotNil(t, updated.LastStatusChange)
	})

	t.Run("Null vendedor unassigns", func(t *testing.T) {
		svc, client := newTestService(t)
		ctx := context.Background()

		createAgent(t, client, "Ana", "principal")
		created, err := svc.Create(ctx, intakeRequest("Lead"), nil)
		require.NoError(t, err)
		require.NotNil(t, created.Vendedor)

		patch := UpdateLeadRequest{Vendedor: OptionalInt{Set: true, Value: nil}}
		updated, err := svc.Update(ctx, created.ID, patch, nil)
		require.NoError(t, err)

		assert.Nil(t, updated.Vendedor)
		last := updated.Historial[len(updated.Historial)-1]
		assert.Equal(t, "Reasignado a Sin asignar", last.Estado)
	})

	t.Run("Absent vendedor leaves assignment untouched", func(t *testing.T) {
		svc, client := newTestService(t)
		ctx := context.Background()

		createAgent(t, client, "Ana", "principal")
		created, err := svc.Create(ctx, intakeRequest("Lead"), nil)
		require.NoError(t, err)

		notas := "llamó dos veces"
		updated, err := svc.Update(ctx, created.ID, UpdateLeadRequest{Notas: &notas}, nil)
		require.NoError(t, err)

		assert.Equal(t, created.Vendedor, updated.Vendedor)
		assert.Len(t, updated.Historial, len(created.Historial))
	})

	t.Run("Unchanged status appends nothing", func(t *testing.T) {
		svc, client := newTestService(t)
		ctx := context.Background()

		createAgent(t, client, "Ana", "principal")
		created, err := svc.Create(ctx, intakeRequest("Lead"), nil)
		require.NoError(t, err)

		estado := "nuevo"
		updated, err := svc.Update(ctx, created.ID, UpdateLeadRequest{Estado: &estado}, nil)
		require.NoError(t, err)

		assert.Len(t, updated.Historial, len(created.Historial))
	})

	t.Run("Lead not found", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Update(context.Background(), 4242, UpdateLeadRequest{}, nil)

		require.Error(t, err)
		assert.Equal(t, "lead not found", err.Error())
	})
}

// A corrupt stored history must not break reads or block further updates.
func TestCorruptHistoryRecovers(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createAgent(t, client, "Ana", "principal")
	created, err := svc.Create(ctx, intakeRequest("Lead"), nil)
	require.NoError(t, err)

	_, err = client.Lead.UpdateOneID(created.ID).SetHistorial("{broken!").Save(ctx)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Historial)

	estado := "contactado"
	updated, err := svc.Update(ctx, created.ID, UpdateLeadRequest{Estado: &estado}, nil)
	require.NoError(t, err)
	require.Len(t, updated.Historial, 1)
	assert.Equal(t, "contactado", updated.Historial[0].Estado)
}

func TestListVisibility(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	gerente, err := client.User.
		Create().
		SetName("Gerencia").
		SetEmail("gerencia@alluma.test").
		SetPasswordHash("x").
		SetRole(user.RoleGerente).
		SetEquipo("principal").
		Save(ctx)
	require.NoError(t, err)

	vendedor := createAgent(t, client, "Ana", "principal")
	_, err = client.User.UpdateOneID(vendedor.ID).SetReportsTo(gerente.ID).Save(ctx)
	require.NoError(t, err)
	outsider := createAgent(t, client, "Diego", "usados")

	mk := func(nombre string, assignee int) {
		req := intakeRequest(nombre)
		req.Vendedor = &assignee
		_, err := svc.Create(ctx, req, nil)
		require.NoError(t, err)
	}
	mk("Lead propio", vendedor.ID)
	mk("Lead ajeno", outsider.ID)

	t.Run("Vendedor sees only own leads", func(t *testing.T) {
		actor := &models.Actor{ID: vendedor.ID, Name: "Ana", Role: string(user.RoleVendedor)}
		leads, err := svc.List(ctx, ListLeadsRequest{}, actor)

		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Lead propio", leads[0].Nombre)
	})

	t.Run("Gerente sees team leads", func(t *testing.T) {
		actor := &models.Actor{ID: gerente.ID, Name: "Gerencia", Role: string(user.RoleGerente)}
		leads, err := svc.List(ctx, ListLeadsRequest{}, actor)

		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Lead propio", leads[0].Nombre)
	})

	t.Run("Owner sees everything", func(t *testing.T) {
		actor := &models.Actor{ID: 9999, Name: "Dueño", Role: string(user.RoleOwner)}
		leads, err := svc.List(ctx, ListLeadsRequest{}, actor)

		require.NoError(t, err)
		assert.Len(t, leads, 2)
	})
}

func TestStatusCounts(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createAgent(t, client, "Ana", "principal")
	_, err := svc.Create(ctx, intakeRequest("Lead 1"), nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, intakeRequest("Lead 2"), nil)
	require.NoError(t, err)

	contactado := intakeRequest("Lead 3")
	contactado.Estado = "contactado"
	_, err = svc.Create(ctx, contactado, nil)
	require.NoError(t, err)

	counts, err := svc.StatusCounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, counts["nuevo"])
	assert.Equal(t, 1, counts["contactado"])
}

func TestNormalizePhone(t *testing.T) {
	t.Run("Formatted number normalized to E.164", func(t *testing.T) {
		assert.Equal(t, "+5491155550001", normalizePhone("+54 9 11 5555-0001", "AR"))
	})

	t.Run("Unparseable number kept verbatim", func(t *testing.T) {
		assert.Equal(t, "no es un teléfono", normalizePhone("  no es un teléfono ", "AR"))
	})
}
