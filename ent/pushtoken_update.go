// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/predicate"
	"github.com/alluma/crm-backend/ent/pushtoken"
)

// PushTokenUpdate is the builder for updating PushToken entities.
type PushTokenUpdate struct {
	config
	hooks    []Hook
	mutation *PushTokenMutation
}

// Where appends a list predicates to the PushTokenUpdate builder.
func (_u *PushTokenUpdate) Where(ps ...predicate.PushToken) *PushTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PushTokenUpdate) SetUserID(v int) *PushTokenUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PushTokenUpdate) SetNillableUserID(v *int) *PushTokenUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *PushTokenUpdate) AddUserID(v int) *PushTokenUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *PushTokenUpdate) SetEndpoint(v string) *PushTokenUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *PushTokenUpdate) SetNillableEndpoint(v *string) *PushTokenUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetP256dh sets the "p256dh" field.
func (_u *PushTokenUpdate) SetP256dh(v string) *PushTokenUpdate {
	_u.mutation.SetP256dh(v)
	return _u
}

// SetNillableP256dh sets the "p256dh" field if the given value is not nil.
func (_u *PushTokenUpdate) SetNillableP256dh(v *string) *PushTokenUpdate {
	if v != nil {
		_u.SetP256dh(*v)
	}
	return _u
}

// SetAuth sets the "auth" field.
func (_u *PushTokenUpdate) SetAuth(v string) *PushTokenUpdate {
	_u.mutation.SetAuth(v)
	return _u
}

// SetNillableAuth sets the "auth" field if the given value is not nil.
func (_u *PushTokenUpdate) SetNillableAuth(v *string) *PushTokenUpdate {
	if v != nil {
		_u.SetAuth(*v)
	}
	return _u
}

// Mutation returns the PushTokenMutation object of the builder.
func (_u *PushTokenUpdate) Mutation() *PushTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PushTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PushTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushTokenUpdate) check() error {
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := pushtoken.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "PushToken.endpoint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.P256dh(); ok {
		if err := pushtoken.P256dhValidator(v); err != nil {
			return &ValidationError{Name: "p256dh", err: fmt.Errorf(`ent: validator failed for field "PushToken.p256dh": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Auth(); ok {
		if err := pushtoken.AuthValidator(v); err != nil {
			return &ValidationError{Name: "auth", err: fmt.Errorf(`ent: validator failed for field "PushToken.auth": %w`, err)}
		}
	}
	return nil
}

func (_u *PushTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushtoken.Table, pushtoken.Columns, sqlgraph.NewFieldSpec(pushtoken.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pushtoken.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(pushtoken.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(pushtoken.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.P256dh(); ok {
		_spec.SetField(pushtoken.FieldP256dh, field.TypeString, value)
	}
	if value, ok := _u.mutation.Auth(); ok {
		_spec.SetField(pushtoken.FieldAuth, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PushTokenUpdateOne is the builder for updating a single PushToken entity.
type PushTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PushTokenMutation
}

// SetUserID sets the "user_id" field.
func (_u *PushTokenUpdateOne) SetUserID(v int) *PushTokenUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PushTokenUpdateOne) SetNillableUserID(v *int) *PushTokenUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *PushTokenUpdateOne) AddUserID(v int) *PushTokenUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *PushTokenUpdateOne) SetEndpoint(v string) *PushTokenUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *PushTokenUpdateOne) SetNillableEndpoint(v *string) *PushTokenUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetP256dh sets the "p256dh" field.
func (_u *PushTokenUpdateOne) SetP256dh(v string) *PushTokenUpdateOne {
	_u.mutation.SetP256dh(v)
	return _u
}

// SetNillableP256dh sets the "p256dh" field if the given value is not nil.
func (_u *PushTokenUpdateOne) SetNillableP256dh(v *string) *PushTokenUpdateOne {
	if v != nil {
		_u.SetP256dh(*v)
	}
	return _u
}

// SetAuth sets the "auth" field.
func (_u *PushTokenUpdateOne) SetAuth(v string) *PushTokenUpdateOne {
	_u.mutation.SetAuth(v)
	return _u
}

// SetNillableAuth sets the "auth" field if the given value is not nil.
func (_u *PushTokenUpdateOne) SetNillableAuth(v *string) *PushTokenUpdateOne {
	if v != nil {
		_u.SetAuth(*v)
	}
	return _u
}

// Mutation returns the PushTokenMutation object of the builder.
func (_u *PushTokenUpdateOne) Mutation() *PushTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the PushTokenUpdate builder.
func (_u *PushTokenUpdateOne) Where(ps ...predicate.PushToken) *PushTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PushTokenUpdateOne) Select(field string, fields ...string) *PushTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PushToken entity.
func (_u *PushTokenUpdateOne) Save(ctx context.Context) (*PushToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushTokenUpdateOne) SaveX(ctx context.Context) *PushToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PushTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushTokenUpdateOne) check() error {
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := pushtoken.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "PushToken.endpoint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.P256dh(); ok {
		if err := pushtoken.P256dhValidator(v); err != nil {
			return &ValidationError{Name: "p256dh", err: fmt.Errorf(`ent: validator failed for field "PushToken.p256dh": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Auth(); ok {
		if err := pushtoken.AuthValidator(v); err != nil {
			return &ValidationError{Name: "auth", err: fmt.Errorf(`ent: validator failed for field "PushToken.auth": %w`, err)}
		}
	}
	return nil
}

func (_u *PushTokenUpdateOne) sqlSave(ctx context.Context) (_node *PushToken, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushtoken.Table, pushtoken.Columns, sqlgraph.NewFieldSpec(pushtoken.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PushToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pushtoken.FieldID)
		for _, f := range fields {
			if !pushtoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pushtoken.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pushtoken.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(pushtoken.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(pushtoken.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.P256dh(); ok {
		_spec.SetField(pushtoken.FieldP256dh, field.TypeString, value)
	}
	if value, ok := _u.mutation.Auth(); ok {
		_spec.SetField(pushtoken.FieldAuth, field.TypeString, value)
	}
	_node = &PushToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
