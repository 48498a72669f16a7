// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/internalnote"
	"github.com/alluma/crm-backend/ent/predicate"
)

// InternalNoteUpdate is the builder for updating InternalNote entities.
type InternalNoteUpdate struct {
	config
	hooks    []Hook
	mutation *InternalNoteMutation
}

// Where appends a list predicates to the InternalNoteUpdate builder.
func (_u *InternalNoteUpdate) Where(ps ...predicate.InternalNote) *InternalNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *InternalNoteUpdate) SetLeadID(v int) *InternalNoteUpdate {
	_u.mutation.ResetLeadID()
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *InternalNoteUpdate) SetNillableLeadID(v *int) *InternalNoteUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// AddLeadID adds value to the "lead_id" field.
func (_u *InternalNoteUpdate) AddLeadID(v int) *InternalNoteUpdate {
	_u.mutation.AddLeadID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InternalNoteUpdate) SetUserID(v int) *InternalNoteUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InternalNoteUpdate) SetNillableUserID(v *int) *InternalNoteUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *InternalNoteUpdate) AddUserID(v int) *InternalNoteUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTexto sets the "texto" field.
func (_u *InternalNoteUpdate) SetTexto(v string) *InternalNoteUpdate {
	_u.mutation.SetTexto(v)
	return _u
}

// SetNillableTexto sets the "texto" field if the given value is not nil.
func (_u *InternalNoteUpdate) SetNillableTexto(v *string) *InternalNoteUpdate {
	if v != nil {
		_u.SetTexto(*v)
	}
	return _u
}

// Mutation returns the InternalNoteMutation object of the builder.
func (_u *InternalNoteUpdate) Mutation() *InternalNoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InternalNoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InternalNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InternalNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InternalNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InternalNoteUpdate) check() error {
	if v, ok := _u.mutation.Texto(); ok {
		if err := internalnote.TextoValidator(v); err != nil {
			return &ValidationError{Name: "texto", err: fmt.Errorf(`ent: validator failed for field "InternalNote.texto": %w`, err)}
		}
	}
	return nil
}

func (_u *InternalNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(internalnote.Table, internalnote.Columns, sqlgraph.NewFieldSpec(internalnote.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(internalnote.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadID(); ok {
		_spec.AddField(internalnote.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(internalnote.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(internalnote.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Texto(); ok {
		_spec.SetField(internalnote.FieldTexto, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{internalnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InternalNoteUpdateOne is the builder for updating a single InternalNote entity.
type InternalNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InternalNoteMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *InternalNoteUpdateOne) SetLeadID(v int) *InternalNoteUpdateOne {
	_u.mutation.ResetLeadID()
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *InternalNoteUpdateOne) SetNillableLeadID(v *int) *InternalNoteUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// AddLeadID adds value to the "lead_id" field.
func (_u *InternalNoteUpdateOne) AddLeadID(v int) *InternalNoteUpdateOne {
	_u.mutation.AddLeadID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InternalNoteUpdateOne) SetUserID(v int) *InternalNoteUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InternalNoteUpdateOne) SetNillableUserID(v *int) *InternalNoteUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *InternalNoteUpdateOne) AddUserID(v int) *InternalNoteUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTexto sets the "texto" field.
func (_u *InternalNoteUpdateOne) SetTexto(v string) *InternalNoteUpdateOne {
	_u.mutation.SetTexto(v)
	return _u
}

// SetNillableTexto sets the "texto" field if the given value is not nil.
func (_u *InternalNoteUpdateOne) SetNillableTexto(v *string) *InternalNoteUpdateOne {
	if v != nil {
		_u.SetTexto(*v)
	}
	return _u
}

// Mutation returns the InternalNoteMutation object of the builder.
func (_u *InternalNoteUpdateOne) Mutation() *InternalNoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the InternalNoteUpdate builder.
func (_u *InternalNoteUpdateOne) Where(ps ...predicate.InternalNote) *InternalNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InternalNoteUpdateOne) Select(field string, fields ...string) *InternalNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InternalNote entity.
func (_u *InternalNoteUpdateOne) Save(ctx context.Context) (*InternalNote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InternalNoteUpdateOne) SaveX(ctx context.Context) *InternalNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InternalNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InternalNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InternalNoteUpdateOne) check() error {
	if v, ok := _u.mutation.Texto(); ok {
		if err := internalnote.TextoValidator(v); err != nil {
			return &ValidationError{Name: "texto", err: fmt.Errorf(`ent: validator failed for field "InternalNote.texto": %w`, err)}
		}
	}
	return nil
}

func (_u *InternalNoteUpdateOne) sqlSave(ctx context.Context) (_node *InternalNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(internalnote.Table, internalnote.Columns, sqlgraph.NewFieldSpec(internalnote.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InternalNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, internalnote.FieldID)
		for _, f := range fields {
			if !internalnote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != internalnote.FieldID {
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
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(internalnote.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadID(); ok {
		_spec.AddField(internalnote.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(internalnote.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(internalnote.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Texto(); ok {
		_spec.SetField(internalnote.FieldTexto, field.TypeString, value)
	}
	_node = &InternalNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{internalnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
