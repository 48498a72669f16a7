// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/reminder"
)

// ReminderCreate is the builder for creating a Reminder entity.
type ReminderCreate struct {
	config
	mutation *ReminderMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *ReminderCreate) SetLeadID(v int) *ReminderCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetFecha sets the "fecha" field.
func (_c *ReminderCreate) SetFecha(v string) *ReminderCreate {
	_c.mutation.SetFecha(v)
	return _c
}

// SetHora sets the "hora" field.
func (_c *ReminderCreate) SetHora(v string) *ReminderCreate {
	_c.mutation.SetHora(v)
	return _c
}

// SetDescripcion sets the "descripcion" field.
func (_c *ReminderCreate) SetDescripcion(v string) *ReminderCreate {
	_c.mutation.SetDescripcion(v)
	return _c
}

// SetCompletado sets the "completado" field.
func (_c *ReminderCreate) SetCompletado(v bool) *ReminderCreate {
	_c.mutation.SetCompletado(v)
	return _c
}

// SetNillableCompletado sets the "completado" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableCompletado(v *bool) *ReminderCreate {
	if v != nil {
		_c.SetCompletado(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReminderCreate) SetCreatedAt(v time.Time) *ReminderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableCreatedAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReminderMutation object of the builder.
func (_c *ReminderCreate) Mutation() *ReminderMutation {
	return _c.mutation
}

// Save creates the Reminder in the database.
func (_c *ReminderCreate) Save(ctx context.Context) (*Reminder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReminderCreate) SaveX(ctx context.Context) *Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReminderCreate) defaults() {
	if _, ok := _c.mutation.Completado(); !ok {
		v := reminder.DefaultCompletado
		_c.mutation.SetCompletado(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reminder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReminderCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "Reminder.lead_id"`)}
	}
	if _, ok := _c.mutation.Fecha(); !ok {
		return &ValidationError{Name: "fecha", err: errors.New(`ent: missing required field "Reminder.fecha"`)}
	}
	if v, ok := _c.mutation.Fecha(); ok {
		if err := reminder.FechaValidator(v); err != nil {
			return &ValidationError{Name: "fecha", err: fmt.Errorf(`ent: validator failed for field "Reminder.fecha": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hora(); !ok {
		return &ValidationError{Name: "hora", err: errors.New(`ent: missing required field "Reminder.hora"`)}
	}
	if v, ok := _c.mutation.Hora(); ok {
		if err := reminder.HoraValidator(v); err != nil {
			return &ValidationError{Name: "hora", err: fmt.Errorf(`ent: validator failed for field "Reminder.hora": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Descripcion(); !ok {
		return &ValidationError{Name: "descripcion", err: errors.New(`ent: missing required field "Reminder.descripcion"`)}
	}
	if v, ok := _c.mutation.Descripcion(); ok {
		if err := reminder.DescripcionValidator(v); err != nil {
			return &ValidationError{Name: "descripcion", err: fmt.Errorf(`ent: validator failed for field "Reminder.descripcion": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completado(); !ok {
		return &ValidationError{Name: "completado", err: errors.New(`ent: missing required field "Reminder.completado"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reminder.created_at"`)}
	}
	return nil
}

func (_c *ReminderCreate) sqlSave(ctx context.Context) (*Reminder, error) {
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

func (_c *ReminderCreate) createSpec() (*Reminder, *sqlgraph.CreateSpec) {
	var (
		_node = &Reminder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reminder.Table, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LeadID(); ok {
		_spec.SetField(reminder.FieldLeadID, field.TypeInt, value)
		_node.LeadID = value
	}
	if value, ok := _c.mutation.Fecha(); ok {
		_spec.SetField(reminder.FieldFecha, field.TypeString, value)
		_node.Fecha = value
	}
	if value, ok := _c.mutation.Hora(); ok {
		_spec.SetField(reminder.FieldHora, field.TypeString, value)
		_node.Hora = value
	}
	if value, ok := _c.mutation.Descripcion(); ok {
		_spec.SetField(reminder.FieldDescripcion, field.TypeString, value)
		_node.Descripcion = value
	}
	if value, ok := _c.mutation.Completado(); ok {
		_spec.SetField(reminder.FieldCompletado, field.TypeBool, value)
		_node.Completado = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reminder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReminderCreateBulk is the builder for creating many Reminder entities in bulk.
type ReminderCreateBulk struct {
	config
	err      error
	builders []*ReminderCreate
}

// Save creates the Reminder entities in the database.
func (_c *ReminderCreateBulk) Save(ctx context.Context) ([]*Reminder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reminder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderMutation)
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
func (_c *ReminderCreateBulk) SaveX(ctx context.Context) []*Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
