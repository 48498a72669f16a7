// Package leads implements lead intake, assignment, and lifecycle updates.
package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/lead"
	"github.com/alluma/crm-backend/ent/predicate"
	"github.com/alluma/crm-backend/ent/user"
	"github.com/alluma/crm-backend/pkg/cache"
	"github.com/alluma/crm-backend/pkg/leadhistory"
	"github.com/alluma/crm-backend/pkg/models"
	"github.com/alluma/crm-backend/pkg/roster"
	"github.com/alluma/crm-backend/pkg/roundrobin"
)

const statusCountsKey = "leads:status_counts"

// Service handles lead operations.
type Service struct {
	client      *ent.Client
	roster      *roster.Service
	cache       *cache.Client
	defaultPool string
	phoneRegion string
	validate    *validator.Validate
	pools       poolLocks
}

// NewService creates a new lead service. cacheClient may be nil; status
// counts are then computed on every call.
func NewService(client *ent.Client, rosterSvc *roster.Service, cacheClient *cache.Client, defaultPool, phoneRegion string) *Service {
	if defaultPool == "" {
		defaultPool = "principal"
	}
	return &Service{
		client:      client,
		roster:      rosterSvc,
		cache:       cacheClient,
		defaultPool: defaultPool,
		phoneRegion: phoneRegion,
		validate:    validator.New(),
	}
}

// poolLocks serializes intake per pool. Two concurrent intakes for the
// same pool must not read the same assignment cursor, or both leads land
// on the same agent. Different pools proceed in parallel.
type poolLocks struct {
	mu    sync.Mutex
	pools map[string]*sync.Mutex
}

func (p *poolLocks) lock(pool string) func() {
	p.mu.Lock()
	if p.pools == nil {
		p.pools = make(map[string]*sync.Mutex)
	}
	m, ok := p.pools[pool]
	if !ok {
		m = &sync.Mutex{}
		p.pools[pool] = m
	}
	p.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// OptionalInt distinguishes an absent JSON field from an explicit null.
// PATCH bodies use it for vendedor: absent leaves the assignment alone,
// null unassigns, a number reassigns.
type OptionalInt struct {
	Set   bool
	Value *int
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// CreateLeadRequest represents a lead intake payload.
type CreateLeadRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Telefono  string `json:"telefono" validate:"required"`
	Modelo    string `json:"modelo" validate:"required"`
	FormaPago string `json:"formaPago"`
	InfoUsado string `json:"infoUsado"`
	Entrega   bool   `json:"entrega"`
	Notas     string `json:"notas"`
	Estado    string `json:"estado"`
	Fuente    string `json:"fuente"`
	Fecha     string `json:"fecha"`
	Equipo    string `json:"equipo"`
	// Vendedor pins the lead to a specific agent and bypasses round-robin.
	Vendedor *int `json:"vendedor"`
}

// UpdateLeadRequest is a permissive patch; nil fields are left untouched.
type UpdateLeadRequest struct {
	Nombre    *string     `json:"nombre"`
	Telefono  *string     `json:"telefono"`
	Modelo    *string     `json:"modelo"`
	FormaPago *string     `json:"formaPago"`
	InfoUsado *string     `json:"infoUsado"`
	Entrega   *bool       `json:"entrega"`
	Notas     *string     `json:"notas"`
	Estado    *string     `json:"estado"`
	Fuente    *string     `json:"fuente"`
	Fecha     *string     `json:"fecha"`
	Equipo    *string     `json:"equipo"`
	Vendedor  OptionalInt `json:"vendedor"`
}

// ListLeadsRequest carries list filters.
type ListLeadsRequest struct {
	Estado   string `query:"estado"`
	Fuente   string `query:"fuente"`
	Equipo   string `query:"equipo"`
	Vendedor *int   `query:"vendedor"`
	Search   string `query:"search"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

// LeadResponse represents a lead with its parsed history log.
type LeadResponse struct {
	ID               int                 `json:"id"`
	Nombre           string              `json:"nombre"`
	Telefono         string              `json:"telefono"`
	Modelo           string              `json:"modelo"`
	FormaPago        string              `json:"formaPago"`
	InfoUsado        string              `json:"infoUsado,omitempty"`
	Entrega          bool                `json:"entrega"`
	Notas            string              `json:"notas"`
	Estado           string              `json:"estado"`
	Fuente           string              `json:"fuente"`
	Fecha            string              `json:"fecha"`
	Equipo           string              `json:"equipo"`
	Vendedor         *int                `json:"vendedor"`
	VendedorNombre   string              `json:"vendedorNombre,omitempty"`
	CreatedBy        *int                `json:"createdBy,omitempty"`
	Historial        []leadhistory.Entry `json:"historial"`
	LastStatusChange *time.Time          `json:"lastStatusChange,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// Create validates and stores a new lead. When no vendedor is pinned in
// the request, the pool's roster and cursor pick the assignee; an empty
// roster leaves the lead unassigned rather than failing intake.
func (s *Service) Create(ctx context.Context, req CreateLeadRequest, actor *models.Actor) (*LeadResponse, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	pool := req.Equipo
	if pool == "" {
		pool = s.defaultPool
	}
	estado := req.Estado
	if estado == "" {
		estado = "nuevo"
	}
	fuente := req.Fuente
	if fuente == "" {
		fuente = "otro"
	}
	fecha := req.Fecha
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	telefono := normalizePhone(req.Telefono, s.phoneRegion)

	actorName := models.SystemActor
	var createdBy *int
	if actor != nil {
		actorName = actor.Name
		if actor.ID > 0 {
			id := actor.ID
			createdBy = &id
		}
	}

	history := []leadhistory.Entry{leadhistory.NewEntry(estado, actorName)}

	if req.Vendedor != nil {
		u, err := s.client.User.Get(ctx, *req.Vendedor)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("vendedor not found")
			}
			return nil, fmt.Errorf("failed to fetch vendedor: %w", err)
		}

		created, err := s.insertLead(ctx, s.client.Lead, req, telefono, estado, fuente, fecha, pool, req.Vendedor, createdBy, history)
		if err != nil {
			return nil, err
		}

		s.invalidateCounts(ctx)
		resp := s.toResponse(created, map[int]string{u.ID: u.Name})
		return &resp, nil
	}

	agents, err := s.roster.Resolve(ctx, pool)
	if err != nil {
		return nil, err
	}

	unlock := s.pools.lock(pool)
	defer unlock()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	cursor, err := poolCursor(ctx, tx, pool)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	var assignedTo *int
	assignedName := ""
	if agent, ok := roundrobin.Next(agents, cursor); ok {
		assignedTo = &agent.ID
		assignedName = agent.Name
		history = append(history, leadhistory.AssignedEntry(agent.Name))
	} else {
		log.Printf("⚠️  No agents available in pool %q, lead enters unassigned", pool)
	}

	created, err := s.insertLead(ctx, tx.Lead, req, telefono, estado, fuente, fecha, pool, assignedTo, createdBy, history)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.invalidateCounts(ctx)

	names := map[int]string{}
	if assignedTo != nil {
		names[*assignedTo] = assignedName
	}
	resp := s.toResponse(created, names)
	return &resp, nil
}

// poolCursor returns the assignee of the most recently created lead in the
// pool that has one, or nil when the pool has no assigned leads yet.
func poolCursor(ctx context.Context, tx *ent.Tx, pool string) (*int, error) {
	last, err := tx.Lead.
		Query().
		Where(
			lead.Equipo(pool),
			lead.AssignedToNotNil(),
		).
		Order(ent.Desc(lead.FieldCreatedAt), ent.Desc(lead.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch assignment cursor: %w", err)
	}

	return last.AssignedTo, nil
}

func (s *Service) insertLead(ctx context.Context, creator *ent.LeadClient, req CreateLeadRequest, telefono, estado, fuente, fecha, pool string, assignedTo, createdBy *int, history []leadhistory.Entry) (*ent.Lead, error) {
	builder := creator.
		Create().
		SetNombre(req.Nombre).
		SetTelefono(telefono).
		SetModelo(req.Modelo).
		SetEntrega(req.Entrega).
		SetNotas(req.Notas).
		SetEstado(estado).
		SetFuente(fuente).
		SetFecha(fecha).
		SetEquipo(pool).
		SetHistorial(leadhistory.Encode(history)).
		SetLastStatusChange(time.Now()).
		SetNillableAssignedTo(assignedTo).
		SetNillableCreatedBy(createdBy)

	if req.FormaPago != "" {
		builder.SetFormaPago(req.FormaPago)
	}
	if req.InfoUsado != "" {
		builder.SetInfoUsado(req.InfoUsado)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return created, nil
}

// Get retrieves a lead visible to the actor.
func (s *Service) Get(ctx context.Context, id int, actor *models.Actor) (*LeadResponse, error) {
	preds, err := s.visibility(ctx, actor)
	if err != nil {
		return nil, err
	}
	preds = append(preds, lead.ID(id))

	l, err := s.client.Lead.
		Query().
		Where(preds...).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	resp := s.toResponse(l, s.agentNames(ctx, []*ent.Lead{l}))
	return &resp, nil
}

// List retrieves leads visible to the actor, newest first.
func (s *Service) List(ctx context.Context, req ListLeadsRequest, actor *models.Actor) ([]LeadResponse, error) {
	if req.Limit <= 0 || req.Limit > 500 {
		req.Limit = 100
	}

	preds, err := s.visibility(ctx, actor)
	if err != nil {
		return nil, err
	}

	if req.Estado != "" {
		preds = append(preds, lead.Estado(req.Estado))
	}
	if req.Fuente != "" {
		preds = append(preds, lead.Fuente(req.Fuente))
	}
	if req.Equipo != "" {
		preds = append(preds, lead.Equipo(req.Equipo))
	}
	if req.Vendedor != nil {
		preds = append(preds, lead.AssignedTo(*req.Vendedor))
	}
	if req.Search != "" {
		preds = append(preds, lead.Or(
			lead.NombreContainsFold(req.Search),
			lead.TelefonoContainsFold(req.Search),
			lead.ModeloContainsFold(req.Search),
		))
	}

	rows, err := s.client.Lead.
		Query().
		Where(preds...).
		Order(ent.Desc(lead.FieldCreatedAt), ent.Desc(lead.FieldID)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}

	names := s.agentNames(ctx, rows)
	result := make([]LeadResponse, len(rows))
	for i, l := range rows {
		result[i] = s.toResponse(l, names)
	}

	return result, nil
}

// Update applies a patch to a lead. A status change appends a history
// entry before any reassignment entry so the log reads in cause order.
func (s *Service) Update(ctx context.Context, id int, req UpdateLeadRequest, actor *models.Actor) (*LeadResponse, error) {
	l, err := s.client.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	actorName := models.SystemActor
	if actor != nil {
		actorName = actor.Name
	}

	history := leadhistory.Parse(l.ID, l.Historial)
	builder := s.client.Lead.UpdateOne(l)

	if req.Nombre != nil {
		builder.SetNombre(*req.Nombre)
	}
	if req.Telefono != nil {
		builder.SetTelefono(normalizePhone(*req.Telefono, s.phoneRegion))
	}
	if req.Modelo != nil {
		builder.SetModelo(*req.Modelo)
	}
	if req.FormaPago != nil {
		builder.SetFormaPago(*req.FormaPago)
	}
	if req.InfoUsado != nil {
		builder.SetInfoUsado(*req.InfoUsado)
	}
	if req.Entrega != nil {
		builder.SetEntrega(*req.Entrega)
	}
	if req.Notas != nil {
		builder.SetNotas(*req.Notas)
	}
	if req.Fuente != nil {
		builder.SetFuente(*req.Fuente)
	}
	if req.Fecha != nil {
		builder.SetFecha(*req.Fecha)
	}
	if req.Equipo != nil {
		builder.SetEquipo(*req.Equipo)
	}

	if req.Estado != nil && *req.Estado != l.Estado {
		history = append(history, leadhistory.NewEntry(*req.Estado, actorName))
		builder.SetEstado(*req.Estado)
		builder.SetLastStatusChange(time.Now())
	}

	names := map[int]string{}
	if req.Vendedor.Set {
		switch {
		case req.Vendedor.Value == nil:
			if l.AssignedTo != nil {
				history = append(history, leadhistory.ReassignedEntry("Sin asignar", actorName))
			}
			builder.ClearAssignedTo()
		case l.AssignedTo == nil || *l.AssignedTo != *req.Vendedor.Value:
			u, err := s.client.User.Get(ctx, *req.Vendedor.Value)
			if err != nil {
				if ent.IsNotFound(err) {
					return nil, fmt.Errorf("vendedor not found")
				}
				return nil, fmt.Errorf("failed to fetch vendedor: %w", err)
			}
			history = append(history, leadhistory.ReassignedEntry(u.Name, actorName))
			builder.SetAssignedTo(u.ID)
			names[u.ID] = u.Name
		}
	}

	builder.SetHistorial(leadhistory.Encode(history))

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	s.invalidateCounts(ctx)

	if updated.AssignedTo != nil && names[*updated.AssignedTo] == "" {
		for id, name := range s.agentNames(ctx, []*ent.Lead{updated}) {
			names[id] = name
		}
	}
	resp := s.toResponse(updated, names)
	return &resp, nil
}

// Delete removes a lead. Role restrictions are enforced by the handler.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.client.Lead.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("lead not found")
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	s.invalidateCounts(ctx)
	return nil
}

// StatusCounts returns the number of leads per estado, cached briefly.
func (s *Service) StatusCounts(ctx context.Context) (map[string]int, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statusCountsKey); err == nil {
			var counts map[string]int
			if err := json.Unmarshal([]byte(cached), &counts); err == nil {
				return counts, nil
			}
		}
	}

	var rows []struct {
		Estado string `json:"estado"`
		Count  int    `json:"count"`
	}
	err := s.client.Lead.
		Query().
		GroupBy(lead.FieldEstado).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Estado] = row.Count
	}

	if s.cache != nil {
		if data, err := json.Marshal(counts); err == nil {
			if err := s.cache.Set(ctx, statusCountsKey, data, time.Minute); err != nil {
				log.Printf("⚠️  Failed to cache status counts: %v", err)
			}
		}
	}

	return counts, nil
}

// visibility builds the role-based scope predicates for the actor.
// vendedor sees leads assigned to or created by them, gerente sees their
// direct reports' plus their own, owner and gerente_general see all.
func (s *Service) visibility(ctx context.Context, actor *models.Actor) ([]predicate.Lead, error) {
	if actor == nil {
		return nil, nil
	}

	switch actor.Role {
	case string(user.RoleOwner), string(user.RoleGerenteGeneral):
		return nil, nil
	case string(user.RoleGerente):
		ids, err := s.client.User.
			Query().
			Where(user.ReportsTo(actor.ID)).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch team members: %w", err)
		}
		ids = append(ids, actor.ID)
		return []predicate.Lead{lead.Or(
			lead.AssignedToIn(ids...),
			lead.CreatedByIn(ids...),
		)}, nil
	default:
		return []predicate.Lead{lead.Or(
			lead.AssignedTo(actor.ID),
			lead.CreatedBy(actor.ID),
		)}, nil
	}
}

func (s *Service) validateCreate(req CreateLeadRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		fields := make([]string, len(invalid))
		for i, fe := range invalid {
			fields[i] = strings.ToLower(fe.Field())
		}
		return fmt.Errorf("missing required fields: %s", strings.Join(fields, ", "))
	}
	return err
}

// agentNames resolves assignee ids to names in one query.
func (s *Service) agentNames(ctx context.Context, rows []*ent.Lead) map[int]string {
	idSet := map[int]bool{}
	for _, l := range rows {
		if l.AssignedTo != nil {
			idSet[*l.AssignedTo] = true
		}
	}
	if len(idSet) == 0 {
		return map[int]string{}
	}

	ids := make([]int, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.client.User.
		Query().
		Where(user.IDIn(ids...)).
		All(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to resolve assignee names: %v", err)
		return map[int]string{}
	}

	names := make(map[int]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

func (s *Service) toResponse(l *ent.Lead, names map[int]string) LeadResponse {
	resp := LeadResponse{
		ID:               l.ID,
		Nombre:           l.Nombre,
		Telefono:         l.Telefono,
		Modelo:           l.Modelo,
		FormaPago:        l.FormaPago,
		InfoUsado:        l.InfoUsado,
		Entrega:          l.Entrega,
		Notas:            l.Notas,
		Estado:           l.Estado,
		Fuente:           l.Fuente,
		Fecha:            l.Fecha,
		Equipo:           l.Equipo,
		Vendedor:         l.AssignedTo,
		CreatedBy:        l.CreatedBy,
		Historial:        leadhistory.Parse(l.ID, l.Historial),
		LastStatusChange: l.LastStatusChange,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
	if l.AssignedTo != nil {
		resp.VendedorNombre = names[*l.AssignedTo]
	}
	return resp
}

// invalidateCounts drops every lead-derived cache entry after a write.
func (s *Service) invalidateCounts(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "leads:*"); err != nil {
		log.Printf("⚠️  Failed to invalidate lead caches: %v", err)
	}
}

func normalizePhone(raw, region string) string {
	trimmed := strings.TrimSpace(raw)
	num, err := phonenumbers.Parse(trimmed, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return trimmed
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
