// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/lead"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
}

// SetNombre sets the "nombre" field.
func (_c *LeadCreate) SetNombre(v string) *LeadCreate {
	_c.mutation.SetNombre(v)
	return _c
}

// SetTelefono sets the "telefono" field.
func (_c *LeadCreate) SetTelefono(v string) *LeadCreate {
	_c.mutation.SetTelefono(v)
	return _c
}

// SetModelo sets the "modelo" field.
func (_c *LeadCreate) SetModelo(v string) *LeadCreate {
	_c.mutation.SetModelo(v)
	return _c
}

// SetFormaPago sets the "forma_pago" field.
func (_c *LeadCreate) SetFormaPago(v string) *LeadCreate {
	_c.mutation.SetFormaPago(v)
	return _c
}

// SetNillableFormaPago sets the "forma_pago" field if the given value is not nil.
func (_c *LeadCreate) SetNillableFormaPago(v *string) *LeadCreate {
	if v != nil {
		_c.SetFormaPago(*v)
	}
	return _c
}

// SetInfoUsado sets the "info_usado" field.
func (_c *LeadCreate) SetInfoUsado(v string) *LeadCreate {
	_c.mutation.SetInfoUsado(v)
	return _c
}

// SetNillableInfoUsado sets the "info_usado" field if the given value is not nil.
func (_c *LeadCreate) SetNillableInfoUsado(v *string) *LeadCreate {
	if v != nil {
		_c.SetInfoUsado(*v)
	}
	return _c
}

// SetEntrega sets the "entrega" field.
func (_c *LeadCreate) SetEntrega(v bool) *LeadCreate {
	_c.mutation.SetEntrega(v)
	return _c
}

// SetNillableEntrega sets the "entrega" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEntrega(v *bool) *LeadCreate {
	if v != nil {
		_c.SetEntrega(*v)
	}
	return _c
}

// SetNotas sets the "notas" field.
func (_c *LeadCreate) SetNotas(v string) *LeadCreate {
	_c.mutation.SetNotas(v)
	return _c
}

// SetNillableNotas sets the "notas" field if the given value is not nil.
func (_c *LeadCreate) SetNillableNotas(v *string) *LeadCreate {
	if v != nil {
		_c.SetNotas(*v)
	}
	return _c
}

// SetEstado sets the "estado" field.
func (_c *LeadCreate) SetEstado(v string) *LeadCreate {
	_c.mutation.SetEstado(v)
	return _c
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEstado(v *string) *LeadCreate {
	if v != nil {
		_c.SetEstado(*v)
	}
	return _c
}

// SetFuente sets the "fuente" field.
func (_c *LeadCreate) SetFuente(v string) *LeadCreate {
	_c.mutation.SetFuente(v)
	return _c
}

// SetNillableFuente sets the "fuente" field if the given value is not nil.
func (_c *LeadCreate) SetNillableFuente(v *string) *LeadCreate {
	if v != nil {
		_c.SetFuente(*v)
	}
	return _c
}

// SetFecha sets the "fecha" field.
func (_c *LeadCreate) SetFecha(v string) *LeadCreate {
	_c.mutation.SetFecha(v)
	return _c
}

// SetEquipo sets the "equipo" field.
func (_c *LeadCreate) SetEquipo(v string) *LeadCreate {
	_c.mutation.SetEquipo(v)
	return _c
}

// SetNillableEquipo sets the "equipo" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEquipo(v *string) *LeadCreate {
	if v != nil {
		_c.SetEquipo(*v)
	}
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *LeadCreate) SetAssignedTo(v int) *LeadCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAssignedTo(v *int) *LeadCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *LeadCreate) SetCreatedBy(v int) *LeadCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedBy(v *int) *LeadCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetHistorial sets the "historial" field.
func (_c *LeadCreate) SetHistorial(v string) *LeadCreate {
	_c.mutation.SetHistorial(v)
	return _c
}

// SetNillableHistorial sets the "historial" field if the given value is not nil.
func (_c *LeadCreate) SetNillableHistorial(v *string) *LeadCreate {
	if v != nil {
		_c.SetHistorial(*v)
	}
	return _c
}

// SetLastStatusChange sets the "last_status_change" field.
func (_c *LeadCreate) SetLastStatusChange(v time.Time) *LeadCreate {
	_c.mutation.SetLastStatusChange(v)
	return _c
}

// SetNillableLastStatusChange sets the "last_status_change" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLastStatusChange(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetLastStatusChange(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadCreate) SetUpdatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUpdatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.FormaPago(); !ok {
		v := lead.DefaultFormaPago
		_c.mutation.SetFormaPago(v)
	}
	if _, ok := _c.mutation.Entrega(); !ok {
		v := lead.DefaultEntrega
		_c.mutation.SetEntrega(v)
	}
	if _, ok := _c.mutation.Notas(); !ok {
		v := lead.DefaultNotas
		_c.mutation.SetNotas(v)
	}
	if _, ok := _c.mutation.Estado(); !ok {
		v := lead.DefaultEstado
		_c.mutation.SetEstado(v)
	}
	if _, ok := _c.mutation.Fuente(); !ok {
		v := lead.DefaultFuente
		_c.mutation.SetFuente(v)
	}
	if _, ok := _c.mutation.Equipo(); !ok {
		v := lead.DefaultEquipo
		_c.mutation.SetEquipo(v)
	}
	if _, ok := _c.mutation.Historial(); !ok {
		v := lead.DefaultHistorial
		_c.mutation.SetHistorial(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.Nombre(); !ok {
		return &ValidationError{Name: "nombre", err: errors.New(`ent: missing required field "Lead.nombre"`)}
	}
	if v, ok := _c.mutation.Nombre(); ok {
		if err := lead.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`ent: validator failed for field "Lead.nombre": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Telefono(); !ok {
		return &ValidationError{Name: "telefono", err: errors.New(`ent: missing required field "Lead.telefono"`)}
	}
	if v, ok := _c.mutation.Telefono(); ok {
		if err := lead.TelefonoValidator(v); err != nil {
			return &ValidationError{Name: "telefono", err: fmt.Errorf(`ent: validator failed for field "Lead.telefono": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Modelo(); !ok {
		return &ValidationError{Name: "modelo", err: errors.New(`ent: missing required field "Lead.modelo"`)}
	}
	if v, ok := _c.mutation.Modelo(); ok {
		if err := lead.ModeloValidator(v); err != nil {
			return &ValidationError{Name: "modelo", err: fmt.Errorf(`ent: validator failed for field "Lead.modelo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FormaPago(); !ok {
		return &ValidationError{Name: "forma_pago", err: errors.New(`ent: missing required field "Lead.forma_pago"`)}
	}
	if _, ok := _c.mutation.Entrega(); !ok {
		return &ValidationError{Name: "entrega", err: errors.New(`ent: missing required field "Lead.entrega"`)}
	}
	if _, ok := _c.mutation.Notas(); !ok {
		return &ValidationError{Name: "notas", err: errors.New(`ent: missing required field "Lead.notas"`)}
	}
	if _, ok := _c.mutation.Estado(); !ok {
		return &ValidationError{Name: "estado", err: errors.New(`ent: missing required field "Lead.estado"`)}
	}
	if _, ok := _c.mutation.Fuente(); !ok {
		return &ValidationError{Name: "fuente", err: errors.New(`ent: missing required field "Lead.fuente"`)}
	}
	if _, ok := _c.mutation.Fecha(); !ok {
		return &ValidationError{Name: "fecha", err: errors.New(`ent: missing required field "Lead.fecha"`)}
	}
	if _, ok := _c.mutation.Equipo(); !ok {
		return &ValidationError{Name: "equipo", err: errors.New(`ent: missing required field "Lead.equipo"`)}
	}
	if _, ok := _c.mutation.Historial(); !ok {
		return &ValidationError{Name: "historial", err: errors.New(`ent: missing required field "Lead.historial"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lead.updated_at"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Nombre(); ok {
		_spec.SetField(lead.FieldNombre, field.TypeString, value)
		_node.Nombre = value
	}
	if value, ok := _c.mutation.Telefono(); ok {
		_spec.SetField(lead.FieldTelefono, field.TypeString, value)
		_node.Telefono = value
	}
	if value, ok := _c.mutation.Modelo(); ok {
		_spec.SetField(lead.FieldModelo, field.TypeString, value)
		_node.Modelo = value
	}
	if value, ok := _c.mutation.FormaPago(); ok {
		_spec.SetField(lead.FieldFormaPago, field.TypeString, value)
		_node.FormaPago = value
	}
	if value, ok := _c.mutation.InfoUsado(); ok {
		_spec.SetField(lead.FieldInfoUsado, field.TypeString, value)
		_node.InfoUsado = value
	}
	if value, ok := _c.mutation.Entrega(); ok {
		_spec.SetField(lead.FieldEntrega, field.TypeBool, value)
		_node.Entrega = value
	}
	if value, ok := _c.mutation.Notas(); ok {
		_spec.SetField(lead.FieldNotas, field.TypeString, value)
		_node.Notas = value
	}
	if value, ok := _c.mutation.Estado(); ok {
		_spec.SetField(lead.FieldEstado, field.TypeString, value)
		_node.Estado = value
	}
	if value, ok := _c.mutation.Fuente(); ok {
		_spec.SetField(lead.FieldFuente, field.TypeString, value)
		_node.Fuente = value
	}
	if value, ok := _c.mutation.Fecha(); ok {
		_spec.SetField(lead.FieldFecha, field.TypeString, value)
		_node.Fecha = value
	}
	if value, ok := _c.mutation.Equipo(); ok {
		_spec.SetField(lead.FieldEquipo, field.TypeString, value)
		_node.Equipo = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(lead.FieldAssignedTo, field.TypeInt, value)
		_node.AssignedTo = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(lead.FieldCreatedBy, field.TypeInt, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.Historial(); ok {
		_spec.SetField(lead.FieldHistorial, field.TypeString, value)
		_node.Historial = value
	}
	if value, ok := _c.mutation.LastStatusChange(); ok {
		_spec.SetField(lead.FieldLastStatusChange, field.TypeTime, value)
		_node.LastStatusChange = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
