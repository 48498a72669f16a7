// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/goal"
	"github.com/alluma/crm-backend/ent/internalnote"
	"github.com/alluma/crm-backend/ent/lead"
	"github.com/alluma/crm-backend/ent/predicate"
	"github.com/alluma/crm-backend/ent/presupuesto"
	"github.com/alluma/crm-backend/ent/pushtoken"
	"github.com/alluma/crm-backend/ent/quote"
	"github.com/alluma/crm-backend/ent/reminder"
	"github.com/alluma/crm-backend/ent/schema"
	"github.com/alluma/crm-backend/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGoal         = "Goal"
	TypeInternalNote = "InternalNote"
	TypeLead         = "Lead"
	TypePresupuesto  = "Presupuesto"
	TypePushToken    = "PushToken"
	TypeQuote        = "Quote"
	TypeReminder     = "Reminder"
	TypeUser         = "User"
)

// GoalMutation represents an operation that mutates the Goal nodes in the graph.
type GoalMutation struct {
	config
	op             Op
	typ            string
	id             *int
	vendedor_id    *int
	addvendedor_id *int
	mes            *string
	meta_ventas    *int
	addmeta_ventas *int
	meta_leads     *int
	addmeta_leads  *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Goal, error)
	predicates     []predicate.Goal
}

var _ ent.Mutation = (*GoalMutation)(nil)

// goalOption allows management of the mutation configuration using functional options.
type goalOption func(*GoalMutation)

// newGoalMutation creates new mutation for the Goal entity.
func newGoalMutation(c config, op Op, opts ...goalOption) *GoalMutation {
	m := &GoalMutation{
		config:        c,
		op:            op,
		typ:           TypeGoal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGoalID sets the ID field of the mutation.
func withGoalID(id int) goalOption {
	return func(m *GoalMutation) {
		var (
			err   error
			once  sync.Once
			value *Goal
		)
		m.oldValue = func(ctx context.Context) (*Goal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Goal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGoal sets the old Goal of the mutation.
func withGoal(node *Goal) goalOption {
	return func(m *GoalMutation) {
		m.oldValue = func(context.Context) (*Goal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GoalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GoalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GoalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GoalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Goal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendedorID sets the "vendedor_id" field.
func (m *GoalMutation) SetVendedorID(i int) {
	m.vendedor_id = &i
	m.addvendedor_id = nil
}

// VendedorID returns the value of the "vendedor_id" field in the mutation.
func (m *GoalMutation) VendedorID() (r int, exists bool) {
	v := m.vendedor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVendedorID returns the old "vendedor_id" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldVendedorID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendedorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendedorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendedorID: %w", err)
	}
	return oldValue.VendedorID, nil
}

// AddVendedorID adds i to the "vendedor_id" field.
func (m *GoalMutation) AddVendedorID(i int) {
	if m.addvendedor_id != nil {
		*m.addvendedor_id += i
	} else {
		m.addvendedor_id = &i
	}
}

// AddedVendedorID returns the value that was added to the "vendedor_id" field in this mutation.
func (m *GoalMutation) AddedVendedorID() (r int, exists bool) {
	v := m.addvendedor_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetVendedorID resets all changes to the "vendedor_id" field.
func (m *GoalMutation) ResetVendedorID() {
	m.vendedor_id = nil
	m.addvendedor_id = nil
}

// SetMes sets the "mes" field.
func (m *GoalMutation) SetMes(s string) {
	m.mes = &s
}

// Mes returns the value of the "mes" field in the mutation.
func (m *GoalMutation) Mes() (r string, exists bool) {
	v := m.mes
	if v == nil {
		return
	}
	return *v, true
}

// OldMes returns the old "mes" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldMes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMes: %w", err)
	}
	return oldValue.Mes, nil
}

// ResetMes resets all changes to the "mes" field.
func (m *GoalMutation) ResetMes() {
	m.mes = nil
}

// SetMetaVentas sets the "meta_ventas" field.
func (m *GoalMutation) SetMetaVentas(i int) {
	m.meta_ventas = &i
	m.addmeta_ventas = nil
}

// MetaVentas returns the value of the "meta_ventas" field in the mutation.
func (m *GoalMutation) MetaVentas() (r int, exists bool) {
	v := m.meta_ventas
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaVentas returns the old "meta_ventas" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldMetaVentas(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaVentas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaVentas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaVentas: %w", err)
	}
	return oldValue.MetaVentas, nil
}

// AddMetaVentas adds i to the "meta_ventas" field.
func (m *GoalMutation) AddMetaVentas(i int) {
	if m.addmeta_ventas != nil {
		*m.addmeta_ventas += i
	} else {
		m.addmeta_ventas = &i
	}
}

// AddedMetaVentas returns the value that was added to the "meta_ventas" field in this mutation.
func (m *GoalMutation) AddedMetaVentas() (r int, exists bool) {
	v := m.addmeta_ventas
	if v == nil {
		return
	}
	return *v, true
}

// ResetMetaVentas resets all changes to the "meta_ventas" field.
func (m *GoalMutation) ResetMetaVentas() {
	m.meta_ventas = nil
	m.addmeta_ventas = nil
}

// SetMetaLeads sets the "meta_leads" field.
func (m *GoalMutation) SetMetaLeads(i int) {
	m.meta_leads = &i
	m.addmeta_leads = nil
}

// MetaLeads returns the value of the "meta_leads" field in the mutation.
func (m *GoalMutation) MetaLeads() (r int, exists bool) {
	v := m.meta_leads
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaLeads returns the old "meta_leads" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldMetaLeads(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaLeads is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaLeads requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaLeads: %w", err)
	}
	return oldValue.MetaLeads, nil
}

// AddMetaLeads adds i to the "meta_leads" field.
func (m *GoalMutation) AddMetaLeads(i int) {
	if m.addmeta_leads != nil {
		*m.addmeta_leads += i
	} else {
		m.addmeta_leads = &i
	}
}

// AddedMetaLeads returns the value that was added to the "meta_leads" field in this mutation.
func (m *GoalMutation) AddedMetaLeads() (r int, exists bool) {
	v := m.addmeta_leads
	if v == nil {
		return
	}
	return *v, true
}

// ResetMetaLeads resets all changes to the "meta_leads" field.
func (m *GoalMutation) ResetMetaLeads() {
	m.meta_leads = nil
	m.addmeta_leads = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GoalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GoalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GoalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GoalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GoalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GoalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GoalMutation builder.
func (m *GoalMutation) Where(ps ...predicate.Goal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GoalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GoalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Goal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GoalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GoalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Goal).
func (m *GoalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GoalMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.vendedor_id != nil {
		fields = append(fields, goal.FieldVendedorID)
	}
	if m.mes != nil {
		fields = append(fields, goal.FieldMes)
	}
	if m.meta_ventas != nil {
		fields = append(fields, goal.FieldMetaVentas)
	}
	if m.meta_leads != nil {
		fields = append(fields, goal.FieldMetaLeads)
	}
	if m.created_at != nil {
		fields = append(fields, goal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, goal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GoalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case goal.FieldVendedorID:
		return m.VendedorID()
	case goal.FieldMes:
		return m.Mes()
	case goal.FieldMetaVentas:
		return m.MetaVentas()
	case goal.FieldMetaLeads:
		return m.MetaLeads()
	case goal.FieldCreatedAt:
		return m.CreatedAt()
	case goal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GoalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case goal.FieldVendedorID:
		return m.OldVendedorID(ctx)
	case goal.FieldMes:
		return m.OldMes(ctx)
	case goal.FieldMetaVentas:
		return m.OldMetaVentas(ctx)
	case goal.FieldMetaLeads:
		return m.OldMetaLeads(ctx)
	case goal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case goal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Goal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case goal.FieldVendedorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendedorID(v)
		return nil
	case goal.FieldMes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMes(v)
		return nil
	case goal.FieldMetaVentas:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaVentas(v)
		return nil
	case goal.FieldMetaLeads:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaLeads(v)
		return nil
	case goal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case goal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GoalMutation) AddedFields() []string {
	var fields []string
	if m.addvendedor_id != nil {
		fields = append(fields, goal.FieldVendedorID)
	}
	if m.addmeta_ventas != nil {
		fields = append(fields, goal.FieldMetaVentas)
	}
	if m.addmeta_leads != nil {
		fields = append(fields, goal.FieldMetaLeads)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GoalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case goal.FieldVendedorID:
		return m.AddedVendedorID()
	case goal.FieldMetaVentas:
		return m.AddedMetaVentas()
	case goal.FieldMetaLeads:
		return m.AddedMetaLeads()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case goal.FieldVendedorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVendedorID(v)
		return nil
	case goal.FieldMetaVentas:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMetaVentas(v)
		return nil
	case goal.FieldMetaLeads:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMetaLeads(v)
		return nil
	}
	return fmt.Errorf("unknown Goal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GoalMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GoalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GoalMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Goal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GoalMutation) ResetField(name string) error {
	switch name {
	case goal.FieldVendedorID:
		m.ResetVendedorID()
		return nil
	case goal.FieldMes:
		m.ResetMes()
		return nil
	case goal.FieldMetaVentas:
		m.ResetMetaVentas()
		return nil
	case goal.FieldMetaLeads:
		m.ResetMetaLeads()
		return nil
	case goal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case goal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GoalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GoalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GoalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GoalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GoalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GoalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GoalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Goal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GoalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Goal edge %s", name)
}

// InternalNoteMutation represents an operation that mutates the InternalNote nodes in the graph.
type InternalNoteMutation struct {
	config
	op            Op
	typ           string
	id            *int
	lead_id       *int
	addlead_id    *int
	user_id       *int
	adduser_id    *int
	texto         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InternalNote, error)
	predicates    []predicate.InternalNote
}

var _ ent.Mutation = (*InternalNoteMutation)(nil)

// internalnoteOption allows management of the mutation configuration using functional options.
type internalnoteOption func(*InternalNoteMutation)

// newInternalNoteMutation creates new mutation for the InternalNote entity.
func newInternalNoteMutation(c config, op Op, opts ...internalnoteOption) *InternalNoteMutation {
	m := &InternalNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeInternalNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInternalNoteID sets the ID field of the mutation.
func withInternalNoteID(id int) internalnoteOption {
	return func(m *InternalNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *InternalNote
		)
		m.oldValue = func(ctx context.Context) (*InternalNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InternalNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInternalNote sets the old InternalNote of the mutation.
func withInternalNote(node *InternalNote) internalnoteOption {
	return func(m *InternalNoteMutation) {
		m.oldValue = func(context.Context) (*InternalNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InternalNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InternalNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InternalNoteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InternalNoteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InternalNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *InternalNoteMutation) SetLeadID(i int) {
	m.lead_id = &i
	m.addlead_id = nil
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *InternalNoteMutation) LeadID() (r int, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the InternalNote entity.
// If the InternalNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternalNoteMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// AddLeadID adds i to the "lead_id" field.
func (m *InternalNoteMutation) AddLeadID(i int) {
	if m.addlead_id != nil {
		*m.addlead_id += i
	} else {
		m.addlead_id = &i
	}
}

// AddedLeadID returns the value that was added to the "lead_id" field in this mutation.
func (m *InternalNoteMutation) AddedLeadID() (r int, exists bool) {
	v := m.addlead_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *InternalNoteMutation) ResetLeadID() {
	m.lead_id = nil
	m.addlead_id = nil
}

// SetUserID sets the "user_id" field.
func (m *InternalNoteMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InternalNoteMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InternalNote entity.
// If the InternalNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternalNoteMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *InternalNoteMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *InternalNoteMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InternalNoteMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTexto sets the "texto" field.
func (m *InternalNoteMutation) SetTexto(s string) {
	m.texto = &s
}

// Texto returns the value of the "texto" field in the mutation.
func (m *InternalNoteMutation) Texto() (r string, exists bool) {
	v := m.texto
	if v == nil {
		return
	}
	return *v, true
}

// OldTexto returns the old "texto" field's value of the InternalNote entity.
// If the InternalNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternalNoteMutation) OldTexto(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTexto is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTexto requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTexto: %w", err)
	}
	return oldValue.Texto, nil
}

// ResetTexto resets all changes to the "texto" field.
func (m *InternalNoteMutation) ResetTexto() {
	m.texto = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InternalNoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InternalNoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InternalNote entity.
// If the InternalNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InternalNoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InternalNoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InternalNoteMutation builder.
func (m *InternalNoteMutation) Where(ps ...predicate.InternalNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InternalNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InternalNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InternalNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InternalNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InternalNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InternalNote).
func (m *InternalNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InternalNoteMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.lead_id != nil {
		fields = append(fields, internalnote.FieldLeadID)
	}
	if m.user_id != nil {
		fields = append(fields, internalnote.FieldUserID)
	}
	if m.texto != nil {
		fields = append(fields, internalnote.FieldTexto)
	}
	if m.created_at != nil {
		fields = append(fields, internalnote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InternalNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case internalnote.FieldLeadID:
		return m.LeadID()
	case internalnote.FieldUserID:
		return m.UserID()
	case internalnote.FieldTexto:
		return m.Texto()
	case internalnote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InternalNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case internalnote.FieldLeadID:
		return m.OldLeadID(ctx)
	case internalnote.FieldUserID:
		return m.OldUserID(ctx)
	case internalnote.FieldTexto:
		return m.OldTexto(ctx)
	case internalnote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InternalNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InternalNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case internalnote.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case internalnote.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case internalnote.FieldTexto:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTexto(v)
		return nil
	case internalnote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InternalNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InternalNoteMutation) AddedFields() []string {
	var fields []string
	if m.addlead_id != nil {
		fields = append(fields, internalnote.FieldLeadID)
	}
	if m.adduser_id != nil {
		fields = append(fields, internalnote.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InternalNoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case internalnote.FieldLeadID:
		return m.AddedLeadID()
	case internalnote.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InternalNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case internalnote.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeadID(v)
		return nil
	case internalnote.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown InternalNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InternalNoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InternalNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InternalNoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InternalNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InternalNoteMutation) ResetField(name string) error {
	switch name {
	case internalnote.FieldLeadID:
		m.ResetLeadID()
		return nil
	case internalnote.FieldUserID:
		m.ResetUserID()
		return nil
	case internalnote.FieldTexto:
		m.ResetTexto()
		return nil
	case internalnote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InternalNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InternalNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InternalNoteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InternalNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InternalNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InternalNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InternalNoteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InternalNoteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InternalNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InternalNoteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InternalNote edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	nombre             *string
	telefono           *string
	modelo             *string
	forma_pago         *string
	info_usado         *string
	entrega            *bool
	notas              *string
	estado             *string
	fuente             *string
	fecha              *string
	equipo             *string
	assigned_to        *int
	addassigned_to     *int
	created_by         *int
	addcreated_by      *int
	historial          *string
	last_status_change *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Lead, error)
	predicates         []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNombre sets the "nombre" field.
func (m *LeadMutation) SetNombre(s string) {
	m.nombre = &s
}

// Nombre returns the value of the "nombre" field in the mutation.
func (m *LeadMutation) Nombre() (r string, exists bool) {
	v := m.nombre
	if v == nil {
		return
	}
	return *v, true
}

// OldNombre returns the old "nombre" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldNombre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombre: %w", err)
	}
	return oldValue.Nombre, nil
}

// ResetNombre resets all changes to the "nombre" field.
func (m *LeadMutation) ResetNombre() {
	m.nombre = nil
}

// SetTelefono sets the "telefono" field.
func (m *LeadMutation) SetTelefono(s string) {
	m.telefono = &s
}

// Telefono returns the value of the "telefono" field in the mutation.
func (m *LeadMutation) Telefono() (r string, exists bool) {
	v := m.telefono
	if v == nil {
		return
	}
	return *v, true
}

// OldTelefono returns the old "telefono" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldTelefono(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelefono is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelefono requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelefono: %w", err)
	}
	return oldValue.Telefono, nil
}

// ResetTelefono resets all changes to the "telefono" field.
func (m *LeadMutation) ResetTelefono() {
	m.telefono = nil
}

// SetModelo sets the "modelo" field.
func (m *LeadMutation) SetModelo(s string) {
	m.modelo = &s
}

// Modelo returns the value of the "modelo" field in the mutation.
func (m *LeadMutation) Modelo() (r string, exists bool) {
	v := m.modelo
	if v == nil {
		return
	}
	return *v, true
}

// OldModelo returns the old "modelo" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldModelo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelo: %w", err)
	}
	return oldValue.Modelo, nil
}

// ResetModelo resets all changes to the "modelo" field.
func (m *LeadMutation) ResetModelo() {
	m.modelo = nil
}

// SetFormaPago sets the "forma_pago" field.
func (m *LeadMutation) SetFormaPago(s string) {
	m.forma_pago = &s
}

// FormaPago returns the value of the "forma_pago" field in the mutation.
func (m *LeadMutation) FormaPago() (r string, exists bool) {
	v := m.forma_pago
	if v == nil {
		return
	}
	return *v, true
}

// OldFormaPago returns the old "forma_pago" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFormaPago(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormaPago is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormaPago requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormaPago: %w", err)
	}
	return oldValue.FormaPago, nil
}

// ResetFormaPago resets all changes to the "forma_pago" field.
func (m *LeadMutation) ResetFormaPago() {
	m.forma_pago = nil
}

// SetInfoUsado sets the "info_usado" field.
func (m *LeadMutation) SetInfoUsado(s string) {
	m.info_usado = &s
}

// InfoUsado returns the value of the "info_usado" field in the mutation.
func (m *LeadMutation) InfoUsado() (r string, exists bool) {
	v := m.info_usado
	if v == nil {
		return
	}
	return *v, true
}

// OldInfoUsado returns the old "info_usado" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldInfoUsado(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInfoUsado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInfoUsado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInfoUsado: %w", err)
	}
	return oldValue.InfoUsado, nil
}

// ClearInfoUsado clears the value of the "info_usado" field.
func (m *LeadMutation) ClearInfoUsado() {
	m.info_usado = nil
	m.clearedFields[lead.FieldInfoUsado] = struct{}{}
}

// InfoUsadoCleared returns if the "info_usado" field was cleared in this mutation.
func (m *LeadMutation) InfoUsadoCleared() bool {
	_, ok := m.clearedFields[lead.FieldInfoUsado]
	return ok
}

// ResetInfoUsado resets all changes to the "info_usado" field.
func (m *LeadMutation) ResetInfoUsado() {
	m.info_usado = nil
	delete(m.clearedFields, lead.FieldInfoUsado)
}

// SetEntrega sets the "entrega" field.
func (m *LeadMutation) SetEntrega(b bool) {
	m.entrega = &b
}

// Entrega returns the value of the "entrega" field in the mutation.
func (m *LeadMutation) Entrega() (r bool, exists bool) {
	v := m.entrega
	if v == nil {
		return
	}
	return *v, true
}

// OldEntrega returns the old "entrega" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEntrega(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntrega is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntrega requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntrega: %w", err)
	}
	return oldValue.Entrega, nil
}

// ResetEntrega resets all changes to the "entrega" field.
func (m *LeadMutation) ResetEntrega() {
	m.entrega = nil
}

// SetNotas sets the "notas" field.
func (m *LeadMutation) SetNotas(s string) {
	m.notas = &s
}

// Notas returns the value of the "notas" field in the mutation.
func (m *LeadMutation) Notas() (r string, exists bool) {
	v := m.notas
	if v == nil {
		return
	}
	return *v, true
}

// OldNotas returns the old "notas" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldNotas(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotas: %w", err)
	}
	return oldValue.Notas, nil
}

// ResetNotas resets all changes to the "notas" field.
func (m *LeadMutation) ResetNotas() {
	m.notas = nil
}

// SetEstado sets the "estado" field.
func (m *LeadMutation) SetEstado(s string) {
	m.estado = &s
}

// Estado returns the value of the "estado" field in the mutation.
func (m *LeadMutation) Estado() (r string, exists bool) {
	v := m.estado
	if v == nil {
		return
	}
	return *v, true
}

// OldEstado returns the old "estado" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEstado(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstado: %w", err)
	}
	return oldValue.Estado, nil
}

// ResetEstado resets all changes to the "estado" field.
func (m *LeadMutation) ResetEstado() {
	m.estado = nil
}

// SetFuente sets the "fuente" field.
func (m *LeadMutation) SetFuente(s string) {
	m.fuente = &s
}

// Fuente returns the value of the "fuente" field in the mutation.
func (m *LeadMutation) Fuente() (r string, exists bool) {
	v := m.fuente
	if v == nil {
		return
	}
	return *v, true
}

// OldFuente returns the old "fuente" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFuente(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFuente is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFuente requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFuente: %w", err)
	}
	return oldValue.Fuente, nil
}

// ResetFuente resets all changes to the "fuente" field.
func (m *LeadMutation) ResetFuente() {
	m.fuente = nil
}

// SetFecha sets the "fecha" field.
func (m *LeadMutation) SetFecha(s string) {
	m.fecha = &s
}

// Fecha returns the value of the "fecha" field in the mutation.
func (m *LeadMutation) Fecha() (r string, exists bool) {
	v := m.fecha
	if v == nil {
		return
	}
	return *v, true
}

// OldFecha returns the old "fecha" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFecha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFecha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFecha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFecha: %w", err)
	}
	return oldValue.Fecha, nil
}

// ResetFecha resets all changes to the "fecha" field.
func (m *LeadMutation) ResetFecha() {
	m.fecha = nil
}

// SetEquipo sets the "equipo" field.
func (m *LeadMutation) SetEquipo(s string) {
	m.equipo = &s
}

// Equipo returns the value of the "equipo" field in the mutation.
func (m *LeadMutation) Equipo() (r string, exists bool) {
	v := m.equipo
	if v == nil {
		return
	}
	return *v, true
}

// OldEquipo returns the old "equipo" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEquipo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEquipo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEquipo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEquipo: %w", err)
	}
	return oldValue.Equipo, nil
}

// ResetEquipo resets all changes to the "equipo" field.
func (m *LeadMutation) ResetEquipo() {
	m.equipo = nil
}

// SetAssignedTo sets the "assigned_to" field.
func (m *LeadMutation) SetAssignedTo(i int) {
	m.assigned_to = &i
	m.addassigned_to = nil
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *LeadMutation) AssignedTo() (r int, exists bool) {
	v := m.assigned_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAssignedTo(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// AddAssignedTo adds i to the "assigned_to" field.
func (m *LeadMutation) AddAssignedTo(i int) {
	if m.addassigned_to != nil {
		*m.addassigned_to += i
	} else {
		m.addassigned_to = &i
	}
}

// AddedAssignedTo returns the value that was added to the "assigned_to" field in this mutation.
func (m *LeadMutation) AddedAssignedTo() (r int, exists bool) {
	v := m.addassigned_to
	if v == nil {
		return
	}
	return *v, true
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (m *LeadMutation) ClearAssignedTo() {
	m.assigned_to = nil
	m.addassigned_to = nil
	m.clearedFields[lead.FieldAssignedTo] = struct{}{}
}

// AssignedToCleared returns if the "assigned_to" field was cleared in this mutation.
func (m *LeadMutation) AssignedToCleared() bool {
	_, ok := m.clearedFields[lead.FieldAssignedTo]
	return ok
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *LeadMutation) ResetAssignedTo() {
	m.assigned_to = nil
	m.addassigned_to = nil
	delete(m.clearedFields, lead.FieldAssignedTo)
}

// SetCreatedBy sets the "created_by" field.
func (m *LeadMutation) SetCreatedBy(i int) {
	m.created_by = &i
	m.addcreated_by = nil
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *LeadMutation) CreatedBy() (r int, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedBy(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// AddCreatedBy adds i to the "created_by" field.
func (m *LeadMutation) AddCreatedBy(i int) {
	if m.addcreated_by != nil {
		*m.addcreated_by += i
	} else {
		m.addcreated_by = &i
	}
}

// AddedCreatedBy returns the value that was added to the "created_by" field in this mutation.
func (m *LeadMutation) AddedCreatedBy() (r int, exists bool) {
	v := m.addcreated_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *LeadMutation) ClearCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
	m.clearedFields[lead.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *LeadMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[lead.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *LeadMutation) ResetCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
	delete(m.clearedFields, lead.FieldCreatedBy)
}

// SetHistorial sets the "historial" field.
func (m *LeadMutation) SetHistorial(s string) {
	m.historial = &s
}

// Historial returns the value of the "historial" field in the mutation.
func (m *LeadMutation) Historial() (r string, exists bool) {
	v := m.historial
	if v == nil {
		return
	}
	return *v, true
}

// OldHistorial returns the old "historial" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldHistorial(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistorial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistorial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistorial: %w", err)
	}
	return oldValue.Historial, nil
}

// ResetHistorial resets all changes to the "historial" field.
func (m *LeadMutation) ResetHistorial() {
	m.historial = nil
}

// SetLastStatusChange sets the "last_status_change" field.
func (m *LeadMutation) SetLastStatusChange(t time.Time) {
	m.last_status_change = &t
}

// LastStatusChange returns the value of the "last_status_change" field in the mutation.
func (m *LeadMutation) LastStatusChange() (r time.Time, exists bool) {
	v := m.last_status_change
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStatusChange returns the old "last_status_change" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLastStatusChange(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStatusChange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStatusChange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStatusChange: %w", err)
	}
	return oldValue.LastStatusChange, nil
}

// ClearLastStatusChange clears the value of the "last_status_change" field.
func (m *LeadMutation) ClearLastStatusChange() {
	m.last_status_change = nil
	m.clearedFields[lead.FieldLastStatusChange] = struct{}{}
}

// LastStatusChangeCleared returns if the "last_status_change" field was cleared in this mutation.
func (m *LeadMutation) LastStatusChangeCleared() bool {
	_, ok := m.clearedFields[lead.FieldLastStatusChange]
	return ok
}

// ResetLastStatusChange resets all changes to the "last_status_change" field.
func (m *LeadMutation) ResetLastStatusChange() {
	m.last_status_change = nil
	delete(m.clearedFields, lead.FieldLastStatusChange)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.nombre != nil {
		fields = append(fields, lead.FieldNombre)
	}
	if m.telefono != nil {
		fields = append(fields, lead.FieldTelefono)
	}
	if m.modelo != nil {
		fields = append(fields, lead.FieldModelo)
	}
	if m.forma_pago != nil {
		fields = append(fields, lead.FieldFormaPago)
	}
	if m.info_usado != nil {
		fields = append(fields, lead.FieldInfoUsado)
	}
	if m.entrega != nil {
		fields = append(fields, lead.FieldEntrega)
	}
	if m.notas != nil {
		fields = append(fields, lead.FieldNotas)
	}
	if m.estado != nil {
		fields = append(fields, lead.FieldEstado)
	}
	if m.fuente != nil {
		fields = append(fields, lead.FieldFuente)
	}
	if m.fecha != nil {
		fields = append(fields, lead.FieldFecha)
	}
	if m.equipo != nil {
		fields = append(fields, lead.FieldEquipo)
	}
	if m.assigned_to != nil {
		fields = append(fields, lead.FieldAssignedTo)
	}
	if m.created_by != nil {
		fields = append(fields, lead.FieldCreatedBy)
	}
	if m.historial != nil {
		fields = append(fields, lead.FieldHistorial)
	}
	if m.last_status_change != nil {
		fields = append(fields, lead.FieldLastStatusChange)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldNombre:
		return m.Nombre()
	case lead.FieldTelefono:
		return m.Telefono()
	case lead.FieldModelo:
		return m.Modelo()
	case lead.FieldFormaPago:
		return m.FormaPago()
	case lead.FieldInfoUsado:
		return m.InfoUsado()
	case lead.FieldEntrega:
		return m.Entrega()
	case lead.FieldNotas:
		return m.Notas()
	case lead.FieldEstado:
		return m.Estado()
	case lead.FieldFuente:
		return m.Fuente()
	case lead.FieldFecha:
		return m.Fecha()
	case lead.FieldEquipo:
		return m.Equipo()
	case lead.FieldAssignedTo:
		return m.AssignedTo()
	case lead.FieldCreatedBy:
		return m.CreatedBy()
	case lead.FieldHistorial:
		return m.Historial()
	case lead.FieldLastStatusChange:
		return m.LastStatusChange()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldNombre:
		return m.OldNombre(ctx)
	case lead.FieldTelefono:
		return m.OldTelefono(ctx)
	case lead.FieldModelo:
		return m.OldModelo(ctx)
	case lead.FieldFormaPago:
		return m.OldFormaPago(ctx)
	case lead.FieldInfoUsado:
		return m.OldInfoUsado(ctx)
	case lead.FieldEntrega:
		return m.OldEntrega(ctx)
	case lead.FieldNotas:
		return m.OldNotas(ctx)
	case lead.FieldEstado:
		return m.OldEstado(ctx)
	case lead.FieldFuente:
		return m.OldFuente(ctx)
	case lead.FieldFecha:
		return m.OldFecha(ctx)
	case lead.FieldEquipo:
		return m.OldEquipo(ctx)
	case lead.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case lead.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case lead.FieldHistorial:
		return m.OldHistorial(ctx)
	case lead.FieldLastStatusChange:
		return m.OldLastStatusChange(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldNombre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombre(v)
		return nil
	case lead.FieldTelefono:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelefono(v)
		return nil
	case lead.FieldModelo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelo(v)
		return nil
	case lead.FieldFormaPago:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormaPago(v)
		return nil
	case lead.FieldInfoUsado:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInfoUsado(v)
		return nil
	case lead.FieldEntrega:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntrega(v)
		return nil
	case lead.FieldNotas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotas(v)
		return nil
	case lead.FieldEstado:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstado(v)
		return nil
	case lead.FieldFuente:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFuente(v)
		return nil
	case lead.FieldFecha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFecha(v)
		return nil
	case lead.FieldEquipo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEquipo(v)
		return nil
	case lead.FieldAssignedTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case lead.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case lead.FieldHistorial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistorial(v)
		return nil
	case lead.FieldLastStatusChange:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStatusChange(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	if m.addassigned_to != nil {
		fields = append(fields, lead.FieldAssignedTo)
	}
	if m.addcreated_by != nil {
		fields = append(fields, lead.FieldCreatedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldAssignedTo:
		return m.AddedAssignedTo()
	case lead.FieldCreatedBy:
		return m.AddedCreatedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lead.FieldAssignedTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssignedTo(v)
		return nil
	case lead.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldInfoUsado) {
		fields = append(fields, lead.FieldInfoUsado)
	}
	if m.FieldCleared(lead.FieldAssignedTo) {
		fields = append(fields, lead.FieldAssignedTo)
	}
	if m.FieldCleared(lead.FieldCreatedBy) {
		fields = append(fields, lead.FieldCreatedBy)
	}
	if m.FieldCleared(lead.FieldLastStatusChange) {
		fields = append(fields, lead.FieldLastStatusChange)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldInfoUsado:
		m.ClearInfoUsado()
		return nil
	case lead.FieldAssignedTo:
		m.ClearAssignedTo()
		return nil
	case lead.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case lead.FieldLastStatusChange:
		m.ClearLastStatusChange()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldNombre:
		m.ResetNombre()
		return nil
	case lead.FieldTelefono:
		m.ResetTelefono()
		return nil
	case lead.FieldModelo:
		m.ResetModelo()
		return nil
	case lead.FieldFormaPago:
		m.ResetFormaPago()
		return nil
	case lead.FieldInfoUsado:
		m.ResetInfoUsado()
		return nil
	case lead.FieldEntrega:
		m.ResetEntrega()
		return nil
	case lead.FieldNotas:
		m.ResetNotas()
		return nil
	case lead.FieldEstado:
		m.ResetEstado()
		return nil
	case lead.FieldFuente:
		m.ResetFuente()
		return nil
	case lead.FieldFecha:
		m.ResetFecha()
		return nil
	case lead.FieldEquipo:
		m.ResetEquipo()
		return nil
	case lead.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case lead.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case lead.FieldHistorial:
		m.ResetHistorial()
		return nil
	case lead.FieldLastStatusChange:
		m.ResetLastStatusChange()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lead edge %s", name)
}

// PresupuestoMutation represents an operation that mutates the Presupuesto nodes in the graph.
type PresupuestoMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	modelo                    *string
	marca                     *string
	imagen_url                *string
	precio_contado            *float64
	addprecio_contado         *float64
	especificaciones_tecnicas *string
	planes_cuotas             *[]schema.QuotePlan
	appendplanes_cuotas       []schema.QuotePlan
	bonificaciones            *string
	anticipo                  *float64
	addanticipo               *float64
	activo                    *bool
	created_by                *int
	addcreated_by             *int
	created_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Presupuesto, error)
	predicates                []predicate.Presupuesto
}

var _ ent.Mutation = (*PresupuestoMutation)(nil)

// presupuestoOption allows management of the mutation configuration using functional options.
type presupuestoOption func(*PresupuestoMutation)

// newPresupuestoMutation creates new mutation for the Presupuesto entity.
func newPresupuestoMutation(c config, op Op, opts ...presupuestoOption) *PresupuestoMutation {
	m := &PresupuestoMutation{
		config:        c,
		op:            op,
		typ:           TypePresupuesto,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPresupuestoID sets the ID field of the mutation.
func withPresupuestoID(id int) presupuestoOption {
	return func(m *PresupuestoMutation) {
		var (
			err   error
			once  sync.Once
			value *Presupuesto
		)
		m.oldValue = func(ctx context.Context) (*Presupuesto, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Presupuesto.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPresupuesto sets the old Presupuesto of the mutation.
func withPresupuesto(node *Presupuesto) presupuestoOption {
	return func(m *PresupuestoMutation) {
		m.oldValue = func(context.Context) (*Presupuesto, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PresupuestoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PresupuestoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PresupuestoMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PresupuestoMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Presupuesto.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModelo sets the "modelo" field.
func (m *PresupuestoMutation) SetModelo(s string) {
	m.modelo = &s
}

// Modelo returns the value of the "modelo" field in the mutation.
func (m *PresupuestoMutation) Modelo() (r string, exists bool) {
	v := m.modelo
	if v == nil {
		return
	}
	return *v, true
}

// OldModelo returns the old "modelo" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldModelo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelo: %w", err)
	}
	return oldValue.Modelo, nil
}

// ResetModelo resets all changes to the "modelo" field.
func (m *PresupuestoMutation) ResetModelo() {
	m.modelo = nil
}

// SetMarca sets the "marca" field.
func (m *PresupuestoMutation) SetMarca(s string) {
	m.marca = &s
}

// Marca returns the value of the "marca" field in the mutation.
func (m *PresupuestoMutation) Marca() (r string, exists bool) {
	v := m.marca
	if v == nil {
		return
	}
	return *v, true
}

// OldMarca returns the old "marca" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldMarca(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarca is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarca requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarca: %w", err)
	}
	return oldValue.Marca, nil
}

// ResetMarca resets all changes to the "marca" field.
func (m *PresupuestoMutation) ResetMarca() {
	m.marca = nil
}

// SetImagenURL sets the "imagen_url" field.
func (m *PresupuestoMutation) SetImagenURL(s string) {
	m.imagen_url = &s
}

// ImagenURL returns the value of the "imagen_url" field in the mutation.
func (m *PresupuestoMutation) ImagenURL() (r string, exists bool) {
	v := m.imagen_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImagenURL returns the old "imagen_url" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldImagenURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagenURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagenURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagenURL: %w", err)
	}
	return oldValue.ImagenURL, nil
}

// ClearImagenURL clears the value of the "imagen_url" field.
func (m *PresupuestoMutation) ClearImagenURL() {
	m.imagen_url = nil
	m.clearedFields[presupuesto.FieldImagenURL] = struct{}{}
}

// ImagenURLCleared returns if the "imagen_url" field was cleared in this mutation.
func (m *PresupuestoMutation) ImagenURLCleared() bool {
	_, ok := m.clearedFields[presupuesto.FieldImagenURL]
	return ok
}

// ResetImagenURL resets all changes to the "imagen_url" field.
func (m *PresupuestoMutation) ResetImagenURL() {
	m.imagen_url = nil
	delete(m.clearedFields, presupuesto.FieldImagenURL)
}

// SetPrecioContado sets the "precio_contado" field.
func (m *PresupuestoMutation) SetPrecioContado(f float64) {
	m.precio_contado = &f
	m.addprecio_contado = nil
}

// PrecioContado returns the value of the "precio_contado" field in the mutation.
func (m *PresupuestoMutation) PrecioContado() (r float64, exists bool) {
	v := m.precio_contado
	if v == nil {
		return
	}
	return *v, true
}

// OldPrecioContado returns the old "precio_contado" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldPrecioContado(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrecioContado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrecioContado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrecioContado: %w", err)
	}
	return oldValue.PrecioContado, nil
}

// AddPrecioContado adds f to the "precio_contado" field.
func (m *PresupuestoMutation) AddPrecioContado(f float64) {
	if m.addprecio_contado != nil {
		*m.addprecio_contado += f
	} else {
		m.addprecio_contado = &f
	}
}

// AddedPrecioContado returns the value that was added to the "precio_contado" field in this mutation.
func (m *PresupuestoMutation) AddedPrecioContado() (r float64, exists bool) {
	v := m.addprecio_contado
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrecioContado clears the value of the "precio_contado" field.
func (m *PresupuestoMutation) ClearPrecioContado() {
	m.precio_contado = nil
	m.addprecio_contado = nil
	m.clearedFields[presupuesto.FieldPrecioContado] = struct{}{}
}

// PrecioContadoCleared returns if the "precio_contado" field was cleared in this mutation.
func (m *PresupuestoMutation) PrecioContadoCleared() bool {
	_, ok := m.clearedFields[presupuesto.FieldPrecioContado]
	return ok
}

// ResetPrecioContado resets all changes to the "precio_contado" field.
func (m *PresupuestoMutation) ResetPrecioContado() {
	m.precio_contado = nil
	m.addprecio_contado = nil
	delete(m.clearedFields, presupuesto.FieldPrecioContado)
}

// SetEspecificacionesTecnicas sets the "especificaciones_tecnicas" field.
func (m *PresupuestoMutation) SetEspecificacionesTecnicas(s string) {
	m.especificaciones_tecnicas = &s
}

// EspecificacionesTecnicas returns the value of the "especificaciones_tecnicas" field in the mutation.
func (m *PresupuestoMutation) EspecificacionesTecnicas() (r string, exists bool) {
	v := m.especificaciones_tecnicas
	if v == nil {
		return
	}
	return *v, true
}

// OldEspecificacionesTecnicas returns the old "especificaciones_tecnicas" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldEspecificacionesTecnicas(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEspecificacionesTecnicas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEspecificacionesTecnicas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEspecificacionesTecnicas: %w", err)
	}
	return oldValue.EspecificacionesTecnicas, nil
}

// ClearEspecificacionesTecnicas clears the value of the "especificaciones_tecnicas" field.
func (m *PresupuestoMutation) ClearEspecificacionesTecnicas() {
	m.especificaciones_tecnicas = nil
	m.clearedFields[presupuesto.FieldEspecificacionesTecnicas] = struct{}{}
}

// EspecificacionesTecnicasCleared returns if the "especificaciones_tecnicas" field was cleared in this mutation.
func (m *PresupuestoMutation) EspecificacionesTecnicasCleared() bool {
	_, ok := m.clearedFields[presupuesto.FieldEspecificacionesTecnicas]
	return ok
}

// ResetEspecificacionesTecnicas resets all changes to the "especificaciones_tecnicas" field.
func (m *PresupuestoMutation) ResetEspecificacionesTecnicas() {
	m.especificaciones_tecnicas = nil
	delete(m.clearedFields, presupuesto.FieldEspecificacionesTecnicas)
}

// SetPlanesCuotas sets the "planes_cuotas" field.
func (m *PresupuestoMutation) SetPlanesCuotas(sp []schema.QuotePlan) {
	m.planes_cuotas = &sp
	m.appendplanes_cuotas = nil
}

// PlanesCuotas returns the value of the "planes_cuotas" field in the mutation.
func (m *PresupuestoMutation) PlanesCuotas() (r []schema.QuotePlan, exists bool) {
	v := m.planes_cuotas
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanesCuotas returns the old "planes_cuotas" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldPlanesCuotas(ctx context.Context) (v []schema.QuotePlan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanesCuotas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanesCuotas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanesCuotas: %w", err)
	}
	return oldValue.PlanesCuotas, nil
}

// AppendPlanesCuotas adds sp to the "planes_cuotas" field.
func (m *PresupuestoMutation) AppendPlanesCuotas(sp []schema.QuotePlan) {
	m.appendplanes_cuotas = append(m.appendplanes_cuotas, sp...)
}

// AppendedPlanesCuotas returns the list of values that were appended to the "planes_cuotas" field in this mutation.
func (m *PresupuestoMutation) AppendedPlanesCuotas() ([]schema.QuotePlan, bool) {
	if len(m.appendplanes_cuotas) == 0 {
		return nil, false
	}
	return m.appendplanes_cuotas, true
}

// ClearPlanesCuotas clears the value of the "planes_cuotas" field.
func (m *PresupuestoMutation) ClearPlanesCuotas() {
	m.planes_cuotas = nil
	m.appendplanes_cuotas = nil
	m.clearedFields[presupuesto.FieldPlanesCuotas] = struct{}{}
}

// PlanesCuotasCleared returns if the "planes_cuotas" field was cleared in this mutation.
func (m *PresupuestoMutation) PlanesCuotasCleared() bool {
	_, ok := m.clearedFields[presupuesto.FieldPlanesCuotas]
	return ok
}

// ResetPlanesCuotas resets all changes to the "planes_cuotas" field.
func (m *PresupuestoMutation) ResetPlanesCuotas() {
	m.planes_cuotas = nil
	m.appendplanes_cuotas = nil
	delete(m.clearedFields, presupuesto.FieldPlanesCuotas)
}

// SetBonificaciones sets the "bonificaciones" field.
func (m *PresupuestoMutation) SetBonificaciones(s string) {
	m.bonificaciones = &s
}

// Bonificaciones returns the value of the "bonificaciones" field in the mutation.
func (m *PresupuestoMutation) Bonificaciones() (r string, exists bool) {
	v := m.bonificaciones
	if v == nil {
		return
	}
	return *v, true
}

// OldBonificaciones returns the old "bonificaciones" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldBonificaciones(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBonificaciones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBonificaciones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBonificaciones: %w", err)
	}
	return oldValue.Bonificaciones, nil
}

// ClearBonificaciones clears the value of the "bonificaciones" field.
func (m *PresupuestoMutation) ClearBonificaciones() {
	m.bonificaciones = nil
	m.clearedFields[presupuesto.FieldBonificaciones] = struct{}{}
}

// BonificacionesCleared returns if the "bonificaciones" field was cleared in this mutation.
func (m *PresupuestoMutation) BonificacionesCleared() bool {
	_, ok := m.clearedFields[presupuesto.FieldBonificaciones]
	return ok
}

// ResetBonificaciones resets all changes to the "bonificaciones" field.
func (m *PresupuestoMutation) ResetBonificaciones() {
	m.bonificaciones = nil
	delete(m.clearedFields, presupuesto.FieldBonificaciones)
}

// SetAnticipo sets the "anticipo" field.
func (m *PresupuestoMutation) SetAnticipo(f float64) {
	m.anticipo = &f
	m.addanticipo = nil
}

// Anticipo returns the value of the "anticipo" field in the mutation.
func (m *PresupuestoMutation) Anticipo() (r float64, exists bool) {
	v := m.anticipo
	if v == nil {
		return
	}
	return *v, true
}

// OldAnticipo returns the old "anticipo" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldAnticipo(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnticipo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnticipo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnticipo: %w", err)
	}
	return oldValue.Anticipo, nil
}

// AddAnticipo adds f to the "anticipo" field.
func (m *PresupuestoMutation) AddAnticipo(f float64) {
	if m.addanticipo != nil {
		*m.addanticipo += f
	} else {
		m.addanticipo = &f
	}
}

// AddedAnticipo returns the value that was added to the "anticipo" field in this mutation.
func (m *PresupuestoMutation) AddedAnticipo() (r float64, exists bool) {
	v := m.addanticipo
	if v == nil {
		return
	}
	return *v, true
}

// ClearAnticipo clears the value of the "anticipo" field.
func (m *PresupuestoMutation) ClearAnticipo() {
	m.anticipo = nil
	m.addanticipo = nil
	m.clearedFields[presupuesto.FieldAnticipo] = struct{}{}
}

// AnticipoCleared returns if the "anticipo" field was cleared in this mutation.
func (m *PresupuestoMutation) AnticipoCleared() bool {
	_, ok := m.clearedFields[presupuesto.FieldAnticipo]
	return ok
}

// ResetAnticipo resets all changes to the "anticipo" field.
func (m *PresupuestoMutation) ResetAnticipo() {
	m.anticipo = nil
	m.addanticipo = nil
	delete(m.clearedFields, presupuesto.FieldAnticipo)
}

// SetActivo sets the "activo" field.
func (m *PresupuestoMutation) SetActivo(b bool) {
	m.activo = &b
}

// Activo returns the value of the "activo" field in the mutation.
func (m *PresupuestoMutation) Activo() (r bool, exists bool) {
	v := m.activo
	if v == nil {
		return
	}
	return *v, true
}

// OldActivo returns the old "activo" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldActivo(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivo: %w", err)
	}
	return oldValue.Activo, nil
}

// ResetActivo resets all changes to the "activo" field.
func (m *PresupuestoMutation) ResetActivo() {
	m.activo = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *PresupuestoMutation) SetCreatedBy(i int) {
	m.created_by = &i
	m.addcreated_by = nil
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PresupuestoMutation) CreatedBy() (r int, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldCreatedBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// AddCreatedBy adds i to the "created_by" field.
func (m *PresupuestoMutation) AddCreatedBy(i int) {
	if m.addcreated_by != nil {
		*m.addcreated_by += i
	} else {
		m.addcreated_by = &i
	}
}

// AddedCreatedBy returns the value that was added to the "created_by" field in this mutation.
func (m *PresupuestoMutation) AddedCreatedBy() (r int, exists bool) {
	v := m.addcreated_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *PresupuestoMutation) ClearCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
	m.clearedFields[presupuesto.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *PresupuestoMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[presupuesto.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PresupuestoMutation) ResetCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
	delete(m.clearedFields, presupuesto.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *PresupuestoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PresupuestoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Presupuesto entity.
// If the Presupuesto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresupuestoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PresupuestoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PresupuestoMutation builder.
func (m *PresupuestoMutation) Where(ps ...predicate.Presupuesto) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PresupuestoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PresupuestoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Presupuesto, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PresupuestoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PresupuestoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Presupuesto).
func (m *PresupuestoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PresupuestoMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.modelo != nil {
		fields = append(fields, presupuesto.FieldModelo)
	}
	if m.marca != nil {
		fields = append(fields, presupuesto.FieldMarca)
	}
	if m.imagen_url != nil {
		fields = append(fields, presupuesto.FieldImagenURL)
	}
	if m.precio_contado != nil {
		fields = append(fields, presupuesto.FieldPrecioContado)
	}
	if m.especificaciones_tecnicas != nil {
		fields = append(fields, presupuesto.FieldEspecificacionesTecnicas)
	}
	if m.planes_cuotas != nil {
		fields = append(fields, presupuesto.FieldPlanesCuotas)
	}
	if m.bonificaciones != nil {
		fields = append(fields, presupuesto.FieldBonificaciones)
	}
	if m.anticipo != nil {
		fields = append(fields, presupuesto.FieldAnticipo)
	}
	if m.activo != nil {
		fields = append(fields, presupuesto.FieldActivo)
	}
	if m.created_by != nil {
		fields = append(fields, presupuesto.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, presupuesto.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PresupuestoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case presupuesto.FieldModelo:
		return m.Modelo()
	case presupuesto.FieldMarca:
		return m.Marca()
	case presupuesto.FieldImagenURL:
		return m.ImagenURL()
	case presupuesto.FieldPrecioContado:
		return m.PrecioContado()
	case presupuesto.FieldEspecificacionesTecnicas:
		return m.EspecificacionesTecnicas()
	case presupuesto.FieldPlanesCuotas:
		return m.PlanesCuotas()
	case presupuesto.FieldBonificaciones:
		return m.Bonificaciones()
	case presupuesto.FieldAnticipo:
		return m.Anticipo()
	case presupuesto.FieldActivo:
		return m.Activo()
	case presupuesto.FieldCreatedBy:
		return m.CreatedBy()
	case presupuesto.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PresupuestoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case presupuesto.FieldModelo:
		return m.OldModelo(ctx)
	case presupuesto.FieldMarca:
		return m.OldMarca(ctx)
	case presupuesto.FieldImagenURL:
		return m.OldImagenURL(ctx)
	case presupuesto.FieldPrecioContado:
		return m.OldPrecioContado(ctx)
	case presupuesto.FieldEspecificacionesTecnicas:
		return m.OldEspecificacionesTecnicas(ctx)
	case presupuesto.FieldPlanesCuotas:
		return m.OldPlanesCuotas(ctx)
	case presupuesto.FieldBonificaciones:
		return m.OldBonificaciones(ctx)
	case presupuesto.FieldAnticipo:
		return m.OldAnticipo(ctx)
	case presupuesto.FieldActivo:
		return m.OldActivo(ctx)
	case presupuesto.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case presupuesto.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Presupuesto field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresupuestoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case presupuesto.FieldModelo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelo(v)
		return nil
	case presupuesto.FieldMarca:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarca(v)
		return nil
	case presupuesto.FieldImagenURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagenURL(v)
		return nil
	case presupuesto.FieldPrecioContado:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrecioContado(v)
		return nil
	case presupuesto.FieldEspecificacionesTecnicas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEspecificacionesTecnicas(v)
		return nil
	case presupuesto.FieldPlanesCuotas:
		v, ok := value.([]schema.QuotePlan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanesCuotas(v)
		return nil
	case presupuesto.FieldBonificaciones:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBonificaciones(v)
		return nil
	case presupuesto.FieldAnticipo:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnticipo(v)
		return nil
	case presupuesto.FieldActivo:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivo(v)
		return nil
	case presupuesto.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case presupuesto.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Presupuesto field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PresupuestoMutation) AddedFields() []string {
	var fields []string
	if m.addprecio_contado != nil {
		fields = append(fields, presupuesto.FieldPrecioContado)
	}
	if m.addanticipo != nil {
		fields = append(fields, presupuesto.FieldAnticipo)
	}
	if m.addcreated_by != nil {
		fields = append(fields, presupuesto.FieldCreatedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PresupuestoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case presupuesto.FieldPrecioContado:
		return m.AddedPrecioContado()
	case presupuesto.FieldAnticipo:
		return m.AddedAnticipo()
	case presupuesto.FieldCreatedBy:
		return m.AddedCreatedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresupuestoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case presupuesto.FieldPrecioContado:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrecioContado(v)
		return nil
	case presupuesto.FieldAnticipo:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnticipo(v)
		return nil
	case presupuesto.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Presupuesto numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PresupuestoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(presupuesto.FieldImagenURL) {
		fields = append(fields, presupuesto.FieldImagenURL)
	}
	if m.FieldCleared(presupuesto.FieldPrecioContado) {
		fields = append(fields, presupuesto.FieldPrecioContado)
	}
	if m.FieldCleared(presupuesto.FieldEspecificacionesTecnicas) {
		fields = append(fields, presupuesto.FieldEspecificacionesTecnicas)
	}
	if m.FieldCleared(presupuesto.FieldPlanesCuotas) {
		fields = append(fields, presupuesto.FieldPlanesCuotas)
	}
	if m.FieldCleared(presupuesto.FieldBonificaciones) {
		fields = append(fields, presupuesto.FieldBonificaciones)
	}
	if m.FieldCleared(presupuesto.FieldAnticipo) {
		fields = append(fields, presupuesto.FieldAnticipo)
	}
	if m.FieldCleared(presupuesto.FieldCreatedBy) {
		fields = append(fields, presupuesto.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PresupuestoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PresupuestoMutation) ClearField(name string) error {
	switch name {
	case presupuesto.FieldImagenURL:
		m.ClearImagenURL()
		return nil
	case presupuesto.FieldPrecioContado:
		m.ClearPrecioContado()
		return nil
	case presupuesto.FieldEspecificacionesTecnicas:
		m.ClearEspecificacionesTecnicas()
		return nil
	case presupuesto.FieldPlanesCuotas:
		m.ClearPlanesCuotas()
		return nil
	case presupuesto.FieldBonificaciones:
		m.ClearBonificaciones()
		return nil
	case presupuesto.FieldAnticipo:
		m.ClearAnticipo()
		return nil
	case presupuesto.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Presupuesto nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PresupuestoMutation) ResetField(name string) error {
	switch name {
	case presupuesto.FieldModelo:
		m.ResetModelo()
		return nil
	case presupuesto.FieldMarca:
		m.ResetMarca()
		return nil
	case presupuesto.FieldImagenURL:
		m.ResetImagenURL()
		return nil
	case presupuesto.FieldPrecioContado:
		m.ResetPrecioContado()
		return nil
	case presupuesto.FieldEspecificacionesTecnicas:
		m.ResetEspecificacionesTecnicas()
		return nil
	case presupuesto.FieldPlanesCuotas:
		m.ResetPlanesCuotas()
		return nil
	case presupuesto.FieldBonificaciones:
		m.ResetBonificaciones()
		return nil
	case presupuesto.FieldAnticipo:
		m.ResetAnticipo()
		return nil
	case presupuesto.FieldActivo:
		m.ResetActivo()
		return nil
	case presupuesto.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case presupuesto.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Presupuesto field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PresupuestoMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PresupuestoMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PresupuestoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PresupuestoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PresupuestoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PresupuestoMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PresupuestoMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Presupuesto unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PresupuestoMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Presupuesto edge %s", name)
}

// PushTokenMutation represents an operation that mutates the PushToken nodes in the graph.
type PushTokenMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int
	adduser_id    *int
	endpoint      *string
	p256dh        *string
	auth          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PushToken, error)
	predicates    []predicate.PushToken
}

var _ ent.Mutation = (*PushTokenMutation)(nil)

// pushtokenOption allows management of the mutation configuration using functional options.
type pushtokenOption func(*PushTokenMutation)

// newPushTokenMutation creates new mutation for the PushToken entity.
func newPushTokenMutation(c config, op Op, opts ...pushtokenOption) *PushTokenMutation {
	m := &PushTokenMutation{
		config:        c,
		op:            op,
		typ:           TypePushToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPushTokenID sets the ID field of the mutation.
func withPushTokenID(id int) pushtokenOption {
	return func(m *PushTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *PushToken
		)
		m.oldValue = func(ctx context.Context) (*PushToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PushToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPushToken sets the old PushToken of the mutation.
func withPushToken(node *PushToken) pushtokenOption {
	return func(m *PushTokenMutation) {
		m.oldValue = func(context.Context) (*PushToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PushTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PushTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PushTokenMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PushTokenMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PushToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PushTokenMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PushTokenMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PushToken entity.
// If the PushToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushTokenMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *PushTokenMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *PushTokenMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PushTokenMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *PushTokenMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *PushTokenMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the PushToken entity.
// If the PushToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushTokenMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *PushTokenMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetP256dh sets the "p256dh" field.
func (m *PushTokenMutation) SetP256dh(s string) {
	m.p256dh = &s
}

// P256dh returns the value of the "p256dh" field in the mutation.
func (m *PushTokenMutation) P256dh() (r string, exists bool) {
	v := m.p256dh
	if v == nil {
		return
	}
	return *v, true
}

// OldP256dh returns the old "p256dh" field's value of the PushToken entity.
// If the PushToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushTokenMutation) OldP256dh(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldP256dh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldP256dh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldP256dh: %w", err)
	}
	return oldValue.P256dh, nil
}

// ResetP256dh resets all changes to the "p256dh" field.
func (m *PushTokenMutation) ResetP256dh() {
	m.p256dh = nil
}

// SetAuth sets the "auth" field.
func (m *PushTokenMutation) SetAuth(s string) {
	m.auth = &s
}

// Auth returns the value of the "auth" field in the mutation.
func (m *PushTokenMutation) Auth() (r string, exists bool) {
	v := m.auth
	if v == nil {
		return
	}
	return *v, true
}

// OldAuth returns the old "auth" field's value of the PushToken entity.
// If the PushToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushTokenMutation) OldAuth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuth: %w", err)
	}
	return oldValue.Auth, nil
}

// ResetAuth resets all changes to the "auth" field.
func (m *PushTokenMutation) ResetAuth() {
	m.auth = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PushTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PushTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PushToken entity.
// If the PushToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PushTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PushTokenMutation builder.
func (m *PushTokenMutation) Where(ps ...predicate.PushToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PushTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PushTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PushToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PushTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PushTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PushToken).
func (m *PushTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PushTokenMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, pushtoken.FieldUserID)
	}
	if m.endpoint != nil {
		fields = append(fields, pushtoken.FieldEndpoint)
	}
	if m.p256dh != nil {
		fields = append(fields, pushtoken.FieldP256dh)
	}
	if m.auth != nil {
		fields = append(fields, pushtoken.FieldAuth)
	}
	if m.created_at != nil {
		fields = append(fields, pushtoken.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PushTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pushtoken.FieldUserID:
		return m.UserID()
	case pushtoken.FieldEndpoint:
		return m.Endpoint()
	case pushtoken.FieldP256dh:
		return m.P256dh()
	case pushtoken.FieldAuth:
		return m.Auth()
	case pushtoken.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PushTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pushtoken.FieldUserID:
		return m.OldUserID(ctx)
	case pushtoken.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case pushtoken.FieldP256dh:
		return m.OldP256dh(ctx)
	case pushtoken.FieldAuth:
		return m.OldAuth(ctx)
	case pushtoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PushToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pushtoken.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pushtoken.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case pushtoken.FieldP256dh:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetP256dh(v)
		return nil
	case pushtoken.FieldAuth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuth(v)
		return nil
	case pushtoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PushToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PushTokenMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, pushtoken.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PushTokenMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pushtoken.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pushtoken.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown PushToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PushTokenMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PushTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PushTokenMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PushToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PushTokenMutation) ResetField(name string) error {
	switch name {
	case pushtoken.FieldUserID:
		m.ResetUserID()
		return nil
	case pushtoken.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case pushtoken.FieldP256dh:
		m.ResetP256dh()
		return nil
	case pushtoken.FieldAuth:
		m.ResetAuth()
		return nil
	case pushtoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PushToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PushTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PushTokenMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PushTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PushTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PushTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PushTokenMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PushTokenMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PushToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PushTokenMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PushToken edge %s", name)
}

// QuoteMutation represents an operation that mutates the Quote nodes in the graph.
type QuoteMutation struct {
	config
	op                Op
	typ               string
	id                *int
	lead_id           *int
	addlead_id        *int
	vehiculo          *string
	precio_contado    *float64
	addprecio_contado *float64
	planes            *[]schema.QuotePlan
	appendplanes      []schema.QuotePlan
	observaciones     *string
	created_by        *int
	addcreated_by     *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Quote, error)
	predicates        []predicate.Quote
}

var _ ent.Mutation = (*QuoteMutation)(nil)

// quoteOption allows management of the mutation configuration using functional options.
type quoteOption func(*QuoteMutation)

// newQuoteMutation creates new mutation for the Quote entity.
func newQuoteMutation(c config, op Op, opts ...quoteOption) *QuoteMutation {
	m := &QuoteMutation{
		config:        c,
		op:            op,
		typ:           TypeQuote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuoteID sets the ID field of the mutation.
func withQuoteID(id int) quoteOption {
	return func(m *QuoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Quote
		)
		m.oldValue = func(ctx context.Context) (*Quote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Quote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuote sets the old Quote of the mutation.
func withQuote(node *Quote) quoteOption {
	return func(m *QuoteMutation) {
		m.oldValue = func(context.Context) (*Quote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuoteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuoteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Quote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *QuoteMutation) SetLeadID(i int) {
	m.lead_id = &i
	m.addlead_id = nil
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *QuoteMutation) LeadID() (r int, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// AddLeadID adds i to the "lead_id" field.
func (m *QuoteMutation) AddLeadID(i int) {
	if m.addlead_id != nil {
		*m.addlead_id += i
	} else {
		m.addlead_id = &i
	}
}

// AddedLeadID returns the value that was added to the "lead_id" field in this mutation.
func (m *QuoteMutation) AddedLeadID() (r int, exists bool) {
	v := m.addlead_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *QuoteMutation) ResetLeadID() {
	m.lead_id = nil
	m.addlead_id = nil
}

// SetVehiculo sets the "vehiculo" field.
func (m *QuoteMutation) SetVehiculo(s string) {
	m.vehiculo = &s
}

// Vehiculo returns the value of the "vehiculo" field in the mutation.
func (m *QuoteMutation) Vehiculo() (r string, exists bool) {
	v := m.vehiculo
	if v == nil {
		return
	}
	return *v, true
}

// OldVehiculo returns the old "vehiculo" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldVehiculo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehiculo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehiculo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehiculo: %w", err)
	}
	return oldValue.Vehiculo, nil
}

// ResetVehiculo resets all changes to the "vehiculo" field.
func (m *QuoteMutation) ResetVehiculo() {
	m.vehiculo = nil
}

// SetPrecioContado sets the "precio_contado" field.
func (m *QuoteMutation) SetPrecioContado(f float64) {
	m.precio_contado = &f
	m.addprecio_contado = nil
}

// PrecioContado returns the value of the "precio_contado" field in the mutation.
func (m *QuoteMutation) PrecioContado() (r float64, exists bool) {
	v := m.precio_contado
	if v == nil {
		return
	}
	return *v, true
}

// OldPrecioContado returns the old "precio_contado" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldPrecioContado(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrecioContado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrecioContado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrecioContado: %w", err)
	}
	return oldValue.PrecioContado, nil
}

// AddPrecioContado adds f to the "precio_contado" field.
func (m *QuoteMutation) AddPrecioContado(f float64) {
	if m.addprecio_contado != nil {
		*m.addprecio_contado += f
	} else {
		m.addprecio_contado = &f
	}
}

// AddedPrecioContado returns the value that was added to the "precio_contado" field in this mutation.
func (m *QuoteMutation) AddedPrecioContado() (r float64, exists bool) {
	v := m.addprecio_contado
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrecioContado resets all changes to the "precio_contado" field.
func (m *QuoteMutation) ResetPrecioContado() {
	m.precio_contado = nil
	m.addprecio_contado = nil
}

// SetPlanes sets the "planes" field.
func (m *QuoteMutation) SetPlanes(sp []schema.QuotePlan) {
	m.planes = &sp
	m.appendplanes = nil
}

// Planes returns the value of the "planes" field in the mutation.
func (m *QuoteMutation) Planes() (r []schema.QuotePlan, exists bool) {
	v := m.planes
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanes returns the old "planes" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldPlanes(ctx context.Context) (v []schema.QuotePlan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanes: %w", err)
	}
	return oldValue.Planes, nil
}

// AppendPlanes adds sp to the "planes" field.
func (m *QuoteMutation) AppendPlanes(sp []schema.QuotePlan) {
	m.appendplanes = append(m.appendplanes, sp...)
}

// AppendedPlanes returns the list of values that were appended to the "planes" field in this mutation.
func (m *QuoteMutation) AppendedPlanes() ([]schema.QuotePlan, bool) {
	if len(m.appendplanes) == 0 {
		return nil, false
	}
	return m.appendplanes, true
}

// ResetPlanes resets all changes to the "planes" field.
func (m *QuoteMutation) ResetPlanes() {
	m.planes = nil
	m.appendplanes = nil
}

// SetObservaciones sets the "observaciones" field.
func (m *QuoteMutation) SetObservaciones(s string) {
	m.observaciones = &s
}

// Observaciones returns the value of the "observaciones" field in the mutation.
func (m *QuoteMutation) Observaciones() (r string, exists bool) {
	v := m.observaciones
	if v == nil {
		return
	}
	return *v, true
}

// OldObservaciones returns the old "observaciones" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldObservaciones(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservaciones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservaciones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservaciones: %w", err)
	}
	return oldValue.Observaciones, nil
}

// ClearObservaciones clears the value of the "observaciones" field.
func (m *QuoteMutation) ClearObservaciones() {
	m.observaciones = nil
	m.clearedFields[quote.FieldObservaciones] = struct{}{}
}

// ObservacionesCleared returns if the "observaciones" field was cleared in this mutation.
func (m *QuoteMutation) ObservacionesCleared() bool {
	_, ok := m.clearedFields[quote.FieldObservaciones]
	return ok
}

// ResetObservaciones resets all changes to the "observaciones" field.
func (m *QuoteMutation) ResetObservaciones() {
	m.observaciones = nil
	delete(m.clearedFields, quote.FieldObservaciones)
}

// SetCreatedBy sets the "created_by" field.
func (m *QuoteMutation) SetCreatedBy(i int) {
	m.created_by = &i
	m.addcreated_by = nil
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *QuoteMutation) CreatedBy() (r int, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldCreatedBy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// AddCreatedBy adds i to the "created_by" field.
func (m *QuoteMutation) AddCreatedBy(i int) {
	if m.addcreated_by != nil {
		*m.addcreated_by += i
	} else {
		m.addcreated_by = &i
	}
}

// AddedCreatedBy returns the value that was added to the "created_by" field in this mutation.
func (m *QuoteMutation) AddedCreatedBy() (r int, exists bool) {
	v := m.addcreated_by
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *QuoteMutation) ResetCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QuoteMutation builder.
func (m *QuoteMutation) Where(ps ...predicate.Quote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Quote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Quote).
func (m *QuoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuoteMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.lead_id != nil {
		fields = append(fields, quote.FieldLeadID)
	}
	if m.vehiculo != nil {
		fields = append(fields, quote.FieldVehiculo)
	}
	if m.precio_contado != nil {
		fields = append(fields, quote.FieldPrecioContado)
	}
	if m.planes != nil {
		fields = append(fields, quote.FieldPlanes)
	}
	if m.observaciones != nil {
		fields = append(fields, quote.FieldObservaciones)
	}
	if m.created_by != nil {
		fields = append(fields, quote.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, quote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quote.FieldLeadID:
		return m.LeadID()
	case quote.FieldVehiculo:
		return m.Vehiculo()
	case quote.FieldPrecioContado:
		return m.PrecioContado()
	case quote.FieldPlanes:
		return m.Planes()
	case quote.FieldObservaciones:
		return m.Observaciones()
	case quote.FieldCreatedBy:
		return m.CreatedBy()
	case quote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quote.FieldLeadID:
		return m.OldLeadID(ctx)
	case quote.FieldVehiculo:
		return m.OldVehiculo(ctx)
	case quote.FieldPrecioContado:
		return m.OldPrecioContado(ctx)
	case quote.FieldPlanes:
		return m.OldPlanes(ctx)
	case quote.FieldObservaciones:
		return m.OldObservaciones(ctx)
	case quote.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case quote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Quote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quote.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case quote.FieldVehiculo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehiculo(v)
		return nil
	case quote.FieldPrecioContado:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrecioContado(v)
		return nil
	case quote.FieldPlanes:
		v, ok := value.([]schema.QuotePlan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanes(v)
		return nil
	case quote.FieldObservaciones:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservaciones(v)
		return nil
	case quote.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case quote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Quote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuoteMutation) AddedFields() []string {
	var fields []string
	if m.addlead_id != nil {
		fields = append(fields, quote.FieldLeadID)
	}
	if m.addprecio_contado != nil {
		fields = append(fields, quote.FieldPrecioContado)
	}
	if m.addcreated_by != nil {
		fields = append(fields, quote.FieldCreatedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quote.FieldLeadID:
		return m.AddedLeadID()
	case quote.FieldPrecioContado:
		return m.AddedPrecioContado()
	case quote.FieldCreatedBy:
		return m.AddedCreatedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quote.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeadID(v)
		return nil
	case quote.FieldPrecioContado:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrecioContado(v)
		return nil
	case quote.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Quote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quote.FieldObservaciones) {
		fields = append(fields, quote.FieldObservaciones)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuoteMutation) ClearField(name string) error {
	switch name {
	case quote.FieldObservaciones:
		m.ClearObservaciones()
		return nil
	}
	return fmt.Errorf("unknown Quote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuoteMutation) ResetField(name string) error {
	switch name {
	case quote.FieldLeadID:
		m.ResetLeadID()
		return nil
	case quote.FieldVehiculo:
		m.ResetVehiculo()
		return nil
	case quote.FieldPrecioContado:
		m.ResetPrecioContado()
		return nil
	case quote.FieldPlanes:
		m.ResetPlanes()
		return nil
	case quote.FieldObservaciones:
		m.ResetObservaciones()
		return nil
	case quote.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case quote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Quote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuoteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuoteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuoteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Quote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuoteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Quote edge %s", name)
}

// ReminderMutation represents an operation that mutates the Reminder nodes in the graph.
type ReminderMutation struct {
	config
	op            Op
	typ           string
	id            *int
	lead_id       *int
	addlead_id    *int
	fecha         *string
	hora          *string
	descripcion   *string
	completado    *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Reminder, error)
	predicates    []predicate.Reminder
}

var _ ent.Mutation = (*ReminderMutation)(nil)

// reminderOption allows management of the mutation configuration using functional options.
type reminderOption func(*ReminderMutation)

// newReminderMutation creates new mutation for the Reminder entity.
func newReminderMutation(c config, op Op, opts ...reminderOption) *ReminderMutation {
	m := &ReminderMutation{
		config:        c,
		op:            op,
		typ:           TypeReminder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReminderID sets the ID field of the mutation.
func withReminderID(id int) reminderOption {
	return func(m *ReminderMutation) {
		var (
			err   error
			once  sync.Once
			value *Reminder
		)
		m.oldValue = func(ctx context.Context) (*Reminder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reminder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReminder sets the old Reminder of the mutation.
func withReminder(node *Reminder) reminderOption {
	return func(m *ReminderMutation) {
		m.oldValue = func(context.Context) (*Reminder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReminderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReminderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReminderMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReminderMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reminder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *ReminderMutation) SetLeadID(i int) {
	m.lead_id = &i
	m.addlead_id = nil
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *ReminderMutation) LeadID() (r int, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// AddLeadID adds i to the "lead_id" field.
func (m *ReminderMutation) AddLeadID(i int) {
	if m.addlead_id != nil {
		*m.addlead_id += i
	} else {
		m.addlead_id = &i
	}
}

// AddedLeadID returns the value that was added to the "lead_id" field in this mutation.
func (m *ReminderMutation) AddedLeadID() (r int, exists bool) {
	v := m.addlead_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *ReminderMutation) ResetLeadID() {
	m.lead_id = nil
	m.addlead_id = nil
}

// SetFecha sets the "fecha" field.
func (m *ReminderMutation) SetFecha(s string) {
	m.fecha = &s
}

// Fecha returns the value of the "fecha" field in the mutation.
func (m *ReminderMutation) Fecha() (r string, exists bool) {
	v := m.fecha
	if v == nil {
		return
	}
	return *v, true
}

// OldFecha returns the old "fecha" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldFecha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFecha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFecha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFecha: %w", err)
	}
	return oldValue.Fecha, nil
}

// ResetFecha resets all changes to the "fecha" field.
func (m *ReminderMutation) ResetFecha() {
	m.fecha = nil
}

// SetHora sets the "hora" field.
func (m *ReminderMutation) SetHora(s string) {
	m.hora = &s
}

// Hora returns the value of the "hora" field in the mutation.
func (m *ReminderMutation) Hora() (r string, exists bool) {
	v := m.hora
	if v == nil {
		return
	}
	return *v, true
}

// OldHora returns the old "hora" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldHora(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHora is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHora requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHora: %w", err)
	}
	return oldValue.Hora, nil
}

// ResetHora resets all changes to the "hora" field.
func (m *ReminderMutation) ResetHora() {
	m.hora = nil
}

// SetDescripcion sets the "descripcion" field.
func (m *ReminderMutation) SetDescripcion(s string) {
	m.descripcion = &s
}

// Descripcion returns the value of the "descripcion" field in the mutation.
func (m *ReminderMutation) Descripcion() (r string, exists bool) {
	v := m.descripcion
	if v == nil {
		return
	}
	return *v, true
}

// OldDescripcion returns the old "descripcion" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldDescripcion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescripcion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescripcion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescripcion: %w", err)
	}
	return oldValue.Descripcion, nil
}

// ResetDescripcion resets all changes to the "descripcion" field.
func (m *ReminderMutation) ResetDescripcion() {
	m.descripcion = nil
}

// SetCompletado sets the "completado" field.
func (m *ReminderMutation) SetCompletado(b bool) {
	m.completado = &b
}

// Completado returns the value of the "completado" field in the mutation.
func (m *ReminderMutation) Completado() (r bool, exists bool) {
	v := m.completado
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletado returns the old "completado" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldCompletado(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletado: %w", err)
	}
	return oldValue.Completado, nil
}

// ResetCompletado resets all changes to the "completado" field.
func (m *ReminderMutation) ResetCompletado() {
	m.completado = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReminderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReminderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReminderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReminderMutation builder.
func (m *ReminderMutation) Where(ps ...predicate.Reminder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReminderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReminderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reminder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReminderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReminderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reminder).
func (m *ReminderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReminderMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.lead_id != nil {
		fields = append(fields, reminder.FieldLeadID)
	}
	if m.fecha != nil {
		fields = append(fields, reminder.FieldFecha)
	}
	if m.hora != nil {
		fields = append(fields, reminder.FieldHora)
	}
	if m.descripcion != nil {
		fields = append(fields, reminder.FieldDescripcion)
	}
	if m.completado != nil {
		fields = append(fields, reminder.FieldCompletado)
	}
	if m.created_at != nil {
		fields = append(fields, reminder.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReminderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reminder.FieldLeadID:
		return m.LeadID()
	case reminder.FieldFecha:
		return m.Fecha()
	case reminder.FieldHora:
		return m.Hora()
	case reminder.FieldDescripcion:
		return m.Descripcion()
	case reminder.FieldCompletado:
		return m.Completado()
	case reminder.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReminderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reminder.FieldLeadID:
		return m.OldLeadID(ctx)
	case reminder.FieldFecha:
		return m.OldFecha(ctx)
	case reminder.FieldHora:
		return m.OldHora(ctx)
	case reminder.FieldDescripcion:
		return m.OldDescripcion(ctx)
	case reminder.FieldCompletado:
		return m.OldCompletado(ctx)
	case reminder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Reminder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReminderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reminder.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case reminder.FieldFecha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFecha(v)
		return nil
	case reminder.FieldHora:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHora(v)
		return nil
	case reminder.FieldDescripcion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescripcion(v)
		return nil
	case reminder.FieldCompletado:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletado(v)
		return nil
	case reminder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Reminder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReminderMutation) AddedFields() []string {
	var fields []string
	if m.addlead_id != nil {
		fields = append(fields, reminder.FieldLeadID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReminderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reminder.FieldLeadID:
		return m.AddedLeadID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReminderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reminder.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeadID(v)
		return nil
	}
	return fmt.Errorf("unknown Reminder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReminderMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReminderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReminderMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Reminder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReminderMutation) ResetField(name string) error {
	switch name {
	case reminder.FieldLeadID:
		m.ResetLeadID()
		return nil
	case reminder.FieldFecha:
		m.ResetFecha()
		return nil
	case reminder.FieldHora:
		m.ResetHora()
		return nil
	case reminder.FieldDescripcion:
		m.ResetDescripcion()
		return nil
	case reminder.FieldCompletado:
		m.ResetCompletado()
		return nil
	case reminder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Reminder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReminderMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReminderMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReminderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReminderMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReminderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReminderMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReminderMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reminder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReminderMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reminder edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	email         *string
	password_hash *string
	role          *user.Role
	active        *bool
	reports_to    *int
	addreports_to *int
	equipo        *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetActive sets the "active" field.
func (m *UserMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *UserMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *UserMutation) ResetActive() {
	m.active = nil
}

// SetReportsTo sets the "reports_to" field.
func (m *UserMutation) SetReportsTo(i int) {
	m.reports_to = &i
	m.addreports_to = nil
}

// ReportsTo returns the value of the "reports_to" field in the mutation.
func (m *UserMutation) ReportsTo() (r int, exists bool) {
	v := m.reports_to
	if v == nil {
		return
	}
	return *v, true
}

// OldReportsTo returns the old "reports_to" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldReportsTo(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportsTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportsTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportsTo: %w", err)
	}
	return oldValue.ReportsTo, nil
}

// AddReportsTo adds i to the "reports_to" field.
func (m *UserMutation) AddReportsTo(i int) {
	if m.addreports_to != nil {
		*m.addreports_to += i
	} else {
		m.addreports_to = &i
	}
}

// AddedReportsTo returns the value that was added to the "reports_to" field in this mutation.
func (m *UserMutation) AddedReportsTo() (r int, exists bool) {
	v := m.addreports_to
	if v == nil {
		return
	}
	return *v, true
}

// ClearReportsTo clears the value of the "reports_to" field.
func (m *UserMutation) ClearReportsTo() {
	m.reports_to = nil
	m.addreports_to = nil
	m.clearedFields[user.FieldReportsTo] = struct{}{}
}

// ReportsToCleared returns if the "reports_to" field was cleared in this mutation.
func (m *UserMutation) ReportsToCleared() bool {
	_, ok := m.clearedFields[user.FieldReportsTo]
	return ok
}

// ResetReportsTo resets all changes to the "reports_to" field.
func (m *UserMutation) ResetReportsTo() {
	m.reports_to = nil
	m.addreports_to = nil
	delete(m.clearedFields, user.FieldReportsTo)
}

// SetEquipo sets the "equipo" field.
func (m *UserMutation) SetEquipo(s string) {
	m.equipo = &s
}

// Equipo returns the value of the "equipo" field in the mutation.
func (m *UserMutation) Equipo() (r string, exists bool) {
	v := m.equipo
	if v == nil {
		return
	}
	return *v, true
}

// OldEquipo returns the old "equipo" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEquipo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEquipo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEquipo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEquipo: %w", err)
	}
	return oldValue.Equipo, nil
}

// ResetEquipo resets all changes to the "equipo" field.
func (m *UserMutation) ResetEquipo() {
	m.equipo = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.active != nil {
		fields = append(fields, user.FieldActive)
	}
	if m.reports_to != nil {
		fields = append(fields, user.FieldReportsTo)
	}
	if m.equipo != nil {
		fields = append(fields, user.FieldEquipo)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldActive:
		return m.Active()
	case user.FieldReportsTo:
		return m.ReportsTo()
	case user.FieldEquipo:
		return m.Equipo()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldActive:
		return m.OldActive(ctx)
	case user.FieldReportsTo:
		return m.OldReportsTo(ctx)
	case user.FieldEquipo:
		return m.OldEquipo(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case user.FieldReportsTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportsTo(v)
		return nil
	case user.FieldEquipo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEquipo(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addreports_to != nil {
		fields = append(fields, user.FieldReportsTo)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldReportsTo:
		return m.AddedReportsTo()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldReportsTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReportsTo(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldReportsTo) {
		fields = append(fields, user.FieldReportsTo)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldReportsTo:
		m.ClearReportsTo()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldActive:
		m.ResetActive()
		return nil
	case user.FieldReportsTo:
		m.ResetReportsTo()
		return nil
	case user.FieldEquipo:
		m.ResetEquipo()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
