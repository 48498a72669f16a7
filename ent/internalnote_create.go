// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/internalnote"
)

// InternalNoteCreate is the builder for creating a InternalNote entity.
type InternalNoteCreate struct {
	config
	mutation *InternalNoteMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *InternalNoteCreate) SetLeadID(v int) *InternalNoteCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *InternalNoteCreate) SetUserID(v int) *InternalNoteCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTexto sets the "texto" field.
func (_c *InternalNoteCreate) SetTexto(v string) *InternalNoteCreate {
	_c.mutation.SetTexto(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InternalNoteCreate) SetCreatedAt(v time.Time) *InternalNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InternalNoteCreate) SetNillableCreatedAt(v *time.Time) *InternalNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the InternalNoteMutation object of the builder.
func (_c *InternalNoteCreate) Mutation() *InternalNoteMutation {
	return _c.mutation
}

// Save creates the InternalNote in the database.
func (_c *InternalNoteCreate) Save(ctx context.Context) (*InternalNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InternalNoteCreate) SaveX(ctx context.Context) *InternalNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InternalNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InternalNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InternalNoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := internalnote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InternalNoteCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "InternalNote.lead_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InternalNote.user_id"`)}
	}
	if _, ok := _c.mutation.Texto(); !ok {
		return &ValidationError{Name: "texto", err: errors.New(`ent: missing required field "InternalNote.texto"`)}
	}
	if v, ok := _c.mutation.Texto(); ok {
		if err := internalnote.TextoValidator(v); err != nil {
			return &ValidationError{Name: "texto", err: fmt.Errorf(`ent: validator failed for field "InternalNote.texto": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InternalNote.created_at"`)}
	}
	return nil
}

func (_c *InternalNoteCreate) sqlSave(ctx context.Context) (*InternalNote, error) {
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

func (_c *InternalNoteCreate) createSpec() (*InternalNote, *sqlgraph.CreateSpec) {
	var (
		_node = &InternalNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(internalnote.Table, sqlgraph.NewFieldSpec(internalnote.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LeadID(); ok {
		_spec.SetField(internalnote.FieldLeadID, field.TypeInt, value)
		_node.LeadID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(internalnote.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Texto(); ok {
		_spec.SetField(internalnote.FieldTexto, field.TypeString, value)
		_node.Texto = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(internalnote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// InternalNoteCreateBulk is the builder for creating many InternalNote entities in bulk.
type InternalNoteCreateBulk struct {
	config
	err      error
	builders []*InternalNoteCreate
}

// Save creates the InternalNote entities in the database.
func (_c *InternalNoteCreateBulk) Save(ctx context.Context) ([]*InternalNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InternalNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InternalNoteMutation)
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
func (_c *InternalNoteCreateBulk) SaveX(ctx context.Context) []*InternalNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InternalNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InternalNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
