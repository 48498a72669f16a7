// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/pushtoken"
)

// PushTokenCreate is the builder for creating a PushToken entity.
type PushTokenCreate struct {
	config
	mutation *PushTokenMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PushTokenCreate) SetUserID(v int) *PushTokenCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *PushTokenCreate) SetEndpoint(v string) *PushTokenCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetP256dh sets the "p256dh" field.
func (_c *PushTokenCreate) SetP256dh(v string) *PushTokenCreate {
	_c.mutation.SetP256dh(v)
	return _c
}

// SetAuth sets the "auth" field.
func (_c *PushTokenCreate) SetAuth(v string) *PushTokenCreate {
	_c.mutation.SetAuth(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PushTokenCreate) SetCreatedAt(v time.Time) *PushTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PushTokenCreate) SetNillableCreatedAt(v *time.Time) *PushTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PushTokenMutation object of the builder.
func (_c *PushTokenCreate) Mutation() *PushTokenMutation {
	return _c.mutation
}

// Save creates the PushToken in the database.
func (_c *PushTokenCreate) Save(ctx context.Context) (*PushToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PushTokenCreate) SaveX(ctx context.Context) *PushToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PushTokenCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pushtoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PushTokenCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PushToken.user_id"`)}
	}
	if _, ok := _c.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "PushToken.endpoint"`)}
	}
	if v, ok := _c.mutation.Endpoint(); ok {
		if err := pushtoken.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "PushToken.endpoint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.P256dh(); !ok {
		return &ValidationError{Name: "p256dh", err: errors.New(`ent: missing required field "PushToken.p256dh"`)}
	}
	if v, ok := _c.mutation.P256dh(); ok {
		if err := pushtoken.P256dhValidator(v); err != nil {
			return &ValidationError{Name: "p256dh", err: fmt.Errorf(`ent: validator failed for field "PushToken.p256dh": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Auth(); !ok {
		return &ValidationError{Name: "auth", err: errors.New(`ent: missing required field "PushToken.auth"`)}
	}
	if v, ok := _c.mutation.Auth(); ok {
		if err := pushtoken.AuthValidator(v); err != nil {
			return &ValidationError{Name: "auth", err: fmt.Errorf(`ent: validator failed for field "PushToken.auth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PushToken.created_at"`)}
	}
	return nil
}

func (_c *PushTokenCreate) sqlSave(ctx context.Context) (*PushToken, error) {
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

func (_c *PushTokenCreate) createSpec() (*PushToken, *sqlgraph.CreateSpec) {
	var (
		_node = &PushToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pushtoken.Table, sqlgraph.NewFieldSpec(pushtoken.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pushtoken.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(pushtoken.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.P256dh(); ok {
		_spec.SetField(pushtoken.FieldP256dh, field.TypeString, value)
		_node.P256dh = value
	}
	if value, ok := _c.mutation.Auth(); ok {
		_spec.SetField(pushtoken.FieldAuth, field.TypeString, value)
		_node.Auth = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pushtoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PushTokenCreateBulk is the builder for creating many PushToken entities in bulk.
type PushTokenCreateBulk struct {
	config
	err      error
	builders []*PushTokenCreate
}

// Save creates the PushToken entities in the database.
func (_c *PushTokenCreateBulk) Save(ctx context.Context) ([]*PushToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PushToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PushTokenMutation)
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
func (_c *PushTokenCreateBulk) SaveX(ctx context.Context) []*PushToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
