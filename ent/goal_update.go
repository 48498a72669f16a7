// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/goal"
	"github.com/alluma/crm-backend/ent/predicate"
)

// GoalUpdate is the builder for updating Goal entities.
type GoalUpdate struct {
	config
	hooks    []Hook
	mutation *GoalMutation
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdate) Where(ps ...predicate.Goal) *GoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendedorID sets the "vendedor_id" field.
func (_u *GoalUpdate) SetVendedorID(v int) *GoalUpdate {
	_u.mutation.ResetVendedorID()
	_u.mutation.SetVendedorID(v)
	return _u
}

// SetNillableVendedorID sets the "vendedor_id" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableVendedorID(v *int) *GoalUpdate {
	if v != nil {
		_u.SetVendedorID(*v)
	}
	return _u
}

// AddVendedorID adds value to the "vendedor_id" field.
func (_u *GoalUpdate) AddVendedorID(v int) *GoalUpdate {
	_u.mutation.AddVendedorID(v)
	return _u
}

// SetMes sets the "mes" field.
func (_u *GoalUpdate) SetMes(v string) *GoalUpdate {
	_u.mutation.SetMes(v)
	return _u
}

// SetNillableMes sets the "mes" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableMes(v *string) *GoalUpdate {
	if v != nil {
		_u.SetMes(*v)
	}
	return _u
}

// SetMetaVentas sets the "meta_ventas" field.
func (_u *GoalUpdate) SetMetaVentas(v int) *GoalUpdate {
	_u.mutation.ResetMetaVentas()
	_u.mutation.SetMetaVentas(v)
	return _u
}

// SetNillableMetaVentas sets the "meta_ventas" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableMetaVentas(v *int) *GoalUpdate {
	if v != nil {
		_u.SetMetaVentas(*v)
	}
	return _u
}

// AddMetaVentas adds value to the "meta_ventas" field.
func (_u *GoalUpdate) AddMetaVentas(v int) *GoalUpdate {
	_u.mutation.AddMetaVentas(v)
	return _u
}

// SetMetaLeads sets the "meta_leads" field.
func (_u *GoalUpdate) SetMetaLeads(v int) *GoalUpdate {
	_u.mutation.ResetMetaLeads()
	_u.mutation.SetMetaLeads(v)
	return _u
}

// SetNillableMetaLeads sets the "meta_leads" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableMetaLeads(v *int) *GoalUpdate {
	if v != nil {
		_u.SetMetaLeads(*v)
	}
	return _u
}

// AddMetaLeads adds value to the "meta_leads" field.
func (_u *GoalUpdate) AddMetaLeads(v int) *GoalUpdate {
	_u.mutation.AddMetaLeads(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GoalUpdate) SetUpdatedAt(v time.Time) *GoalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdate) Mutation() *GoalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GoalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GoalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := goal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdate) check() error {
	if v, ok := _u.mutation.Mes(); ok {
		if err := goal.MesValidator(v); err != nil {
			return &ValidationError{Name: "mes", err: fmt.Errorf(`ent: validator failed for field "Goal.mes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaVentas(); ok {
		if err := goal.MetaVentasValidator(v); err != nil {
			return &ValidationError{Name: "meta_ventas", err: fmt.Errorf(`ent: validator failed for field "Goal.meta_ventas": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaLeads(); ok {
		if err := goal.MetaLeadsValidator(v); err != nil {
			return &ValidationError{Name: "meta_leads", err: fmt.Errorf(`ent: validator failed for field "Goal.meta_leads": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendedorID(); ok {
		_spec.SetField(goal.FieldVendedorID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVendedorID(); ok {
		_spec.AddField(goal.FieldVendedorID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mes(); ok {
		_spec.SetField(goal.FieldMes, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetaVentas(); ok {
		_spec.SetField(goal.FieldMetaVentas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetaVentas(); ok {
		_spec.AddField(goal.FieldMetaVentas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MetaLeads(); ok {
		_spec.SetField(goal.FieldMetaLeads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetaLeads(); ok {
		_spec.AddField(goal.FieldMetaLeads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(goal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GoalUpdateOne is the builder for updating a single Goal entity.
type GoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GoalMutation
}

// SetVendedorID sets the "vendedor_id" field.
func (_u *GoalUpdateOne) SetVendedorID(v int) *GoalUpdateOne {
	_u.mutation.ResetVendedorID()
	_u.mutation.SetVendedorID(v)
	return _u
}

// SetNillableVendedorID sets the "vendedor_id" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableVendedorID(v *int) *GoalUpdateOne {
	if v != nil {
		_u.SetVendedorID(*v)
	}
	return _u
}

// AddVendedorID adds value to the "vendedor_id" field.
func (_u *GoalUpdateOne) AddVendedorID(v int) *GoalUpdateOne {
	_u.mutation.AddVendedorID(v)
	return _u
}

// SetMes sets the "mes" field.
func (_u *GoalUpdateOne) SetMes(v string) *GoalUpdateOne {
	_u.mutation.SetMes(v)
	return _u
}

// SetNillableMes sets the "mes" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableMes(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetMes(*v)
	}
	return _u
}

// SetMetaVentas sets the "meta_ventas" field.
func (_u *GoalUpdateOne) SetMetaVentas(v int) *GoalUpdateOne {
	_u.mutation.ResetMetaVentas()
	_u.mutation.SetMetaVentas(v)
	return _u
}

// SetNillableMetaVentas sets the "meta_ventas" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableMetaVentas(v *int) *GoalUpdateOne {
	if v != nil {
		_u.SetMetaVentas(*v)
	}
	return _u
}

// AddMetaVentas adds value to the "meta_ventas" field.
func (_u *GoalUpdateOne) AddMetaVentas(v int) *GoalUpdateOne {
	_u.mutation.AddMetaVentas(v)
	return _u
}

// SetMetaLeads sets the "meta_leads" field.
func (_u *GoalUpdateOne) SetMetaLeads(v int) *GoalUpdateOne {
	_u.mutation.ResetMetaLeads()
	_u.mutation.SetMetaLeads(v)
	return _u
}

// SetNillableMetaLeads sets the "meta_leads" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableMetaLeads(v *int) *GoalUpdateOne {
	if v != nil {
		_u.SetMetaLeads(*v)
	}
	return _u
}

// AddMetaLeads adds value to the "meta_leads" field.
func (_u *GoalUpdateOne) AddMetaLeads(v int) *GoalUpdateOne {
	_u.mutation.AddMetaLeads(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GoalUpdateOne) SetUpdatedAt(v time.Time) *GoalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdateOne) Mutation() *GoalMutation {
	return _u.mutation
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdateOne) Where(ps ...predicate.Goal) *GoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GoalUpdateOne) Select(field string, fields ...string) *GoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Goal entity.
func (_u *GoalUpdateOne) Save(ctx context.Context) (*Goal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdateOne) SaveX(ctx context.Context) *Goal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GoalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := goal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdateOne) check() error {
	if v, ok := _u.mutation.Mes(); ok {
		if err := goal.MesValidator(v); err != nil {
			return &ValidationError{Name: "mes", err: fmt.Errorf(`ent: validator failed for field "Goal.mes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaVentas(); ok {
		if err := goal.MetaVentasValidator(v); err != nil {
			return &ValidationError{Name: "meta_ventas", err: fmt.Errorf(`ent: validator failed for field "Goal.meta_ventas": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaLeads(); ok {
		if err := goal.MetaLeadsValidator(v); err != nil {
			return &ValidationError{Name: "meta_leads", err: fmt.Errorf(`ent: validator failed for field "Goal.meta_leads": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdateOne) sqlSave(ctx context.Context) (_node *Goal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Goal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, goal.FieldID)
		for _, f := range fields {
			if !goal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != goal.FieldID {
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
	if value, ok := _u.mutation.VendedorID(); ok {
		_spec.SetField(goal.FieldVendedorID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVendedorID(); ok {
		_spec.AddField(goal.FieldVendedorID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mes(); ok {
		_spec.SetField(goal.FieldMes, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetaVentas(); ok {
		_spec.SetField(goal.FieldMetaVentas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetaVentas(); ok {
		_spec.AddField(goal.FieldMetaVentas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MetaLeads(); ok {
		_spec.SetField(goal.FieldMetaLeads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMetaLeads(); ok {
		_spec.AddField(goal.FieldMetaLeads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(goal.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Goal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
