// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/predicate"
	"github.com/alluma/crm-backend/ent/quote"
	"github.com/alluma/crm-backend/ent/schema"
)

// QuoteUpdate is the builder for updating Quote entities.
type QuoteUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteMutation
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdate) Where(ps ...predicate.Quote) *QuoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *QuoteUpdate) SetLeadID(v int) *QuoteUpdate {
	_u.mutation.ResetLeadID()
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableLeadID(v *int) *QuoteUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// AddLeadID adds value to the "lead_id" field.
func (_u *QuoteUpdate) AddLeadID(v int) *QuoteUpdate {
	_u.mutation.AddLeadID(v)
	return _u
}

// SetVehiculo sets the "vehiculo" field.
func (_u *QuoteUpdate) SetVehiculo(v string) *QuoteUpdate {
	_u.mutation.SetVehiculo(v)
	return _u
}

// SetNillableVehiculo sets the "vehiculo" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableVehiculo(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetVehiculo(*v)
	}
	return _u
}

// SetPrecioContado sets the "precio_contado" field.
func (_u *QuoteUpdate) SetPrecioContado(v float64) *QuoteUpdate {
	_u.mutation.ResetPrecioContado()
	_u.mutation.SetPrecioContado(v)
	return _u
}

// SetNillablePrecioContado sets the "precio_contado" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillablePrecioContado(v *float64) *QuoteUpdate {
	if v != nil {
		_u.SetPrecioContado(*v)
	}
	return _u
}

// AddPrecioContado adds value to the "precio_contado" field.
func (_u *QuoteUpdate) AddPrecioContado(v float64) *QuoteUpdate {
	_u.mutation.AddPrecioContado(v)
	return _u
}

// SetPlanes sets the "planes" field.
func (_u *QuoteUpdate) SetPlanes(v []schema.QuotePlan) *QuoteUpdate {
	_u.mutation.SetPlanes(v)
	return _u
}

// AppendPlanes appends value to the "planes" field.
func (_u *QuoteUpdate) AppendPlanes(v []schema.QuotePlan) *QuoteUpdate {
	_u.mutation.AppendPlanes(v)
	return _u
}

// SetObservaciones sets the "observaciones" field.
func (_u *QuoteUpdate) SetObservaciones(v string) *QuoteUpdate {
	_u.mutation.SetObservaciones(v)
	return _u
}

// SetNillableObservaciones sets the "observaciones" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableObservaciones(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetObservaciones(*v)
	}
	return _u
}

// ClearObservaciones clears the value of the "observaciones" field.
func (_u *QuoteUpdate) ClearObservaciones() *QuoteUpdate {
	_u.mutation.ClearObservaciones()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *QuoteUpdate) SetCreatedBy(v int) *QuoteUpdate {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableCreatedBy(v *int) *QuoteUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *QuoteUpdate) AddCreatedBy(v int) *QuoteUpdate {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdate) Mutation() *QuoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdate) check() error {
	if v, ok := _u.mutation.Vehiculo(); ok {
		if err := quote.VehiculoValidator(v); err != nil {
			return &ValidationError{Name: "vehiculo", err: fmt.Errorf(`ent: validator failed for field "Quote.vehiculo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrecioContado(); ok {
		if err := quote.PrecioContadoValidator(v); err != nil {
			return &ValidationError{Name: "precio_contado", err: fmt.Errorf(`ent: validator failed for field "Quote.precio_contado": %w`, err)}
		}
	}
	return nil
}

func (_u *QuoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(quote.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadID(); ok {
		_spec.AddField(quote.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Vehiculo(); ok {
		_spec.SetField(quote.FieldVehiculo, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrecioContado(); ok {
		_spec.SetField(quote.FieldPrecioContado, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrecioContado(); ok {
		_spec.AddField(quote.FieldPrecioContado, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Planes(); ok {
		_spec.SetField(quote.FieldPlanes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quote.FieldPlanes, value)
		})
	}
	if value, ok := _u.mutation.Observaciones(); ok {
		_spec.SetField(quote.FieldObservaciones, field.TypeString, value)
	}
	if _u.mutation.ObservacionesCleared() {
		_spec.ClearField(quote.FieldObservaciones, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(quote.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(quote.FieldCreatedBy, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteUpdateOne is the builder for updating a single Quote entity.
type QuoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *QuoteUpdateOne) SetLeadID(v int) *QuoteUpdateOne {
	_u.mutation.ResetLeadID()
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableLeadID(v *int) *QuoteUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// AddLeadID adds value to the "lead_id" field.
func (_u *QuoteUpdateOne) AddLeadID(v int) *QuoteUpdateOne {
	_u.mutation.AddLeadID(v)
	return _u
}

// SetVehiculo sets the "vehiculo" field.
func (_u *QuoteUpdateOne) SetVehiculo(v string) *QuoteUpdateOne {
	_u.mutation.SetVehiculo(v)
	return _u
}

// SetNillableVehiculo sets the "vehiculo" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableVehiculo(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetVehiculo(*v)
	}
	return _u
}

// SetPrecioContado sets the "precio_contado" field.
func (_u *QuoteUpdateOne) SetPrecioContado(v float64) *QuoteUpdateOne {
	_u.mutation.ResetPrecioContado()
	_u.mutation.SetPrecioContado(v)
	return _u
}

// SetNillablePrecioContado sets the "precio_contado" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillablePrecioContado(v *float64) *QuoteUpdateOne {
	if v != nil {
		_u.SetPrecioContado(*v)
	}
	return _u
}

// AddPrecioContado adds value to the "precio_contado" field.
func (_u *QuoteUpdateOne) AddPrecioContado(v float64) *QuoteUpdateOne {
	_u.mutation.AddPrecioContado(v)
	return _u
}

// SetPlanes sets the "planes" field.
func (_u *QuoteUpdateOne) SetPlanes(v []schema.QuotePlan) *QuoteUpdateOne {
	_u.mutation.SetPlanes(v)
	return _u
}

// AppendPlanes appends value to the "planes" field.
func (_u *QuoteUpdateOne) AppendPlanes(v []schema.QuotePlan) *QuoteUpdateOne {
	_u.mutation.AppendPlanes(v)
	return _u
}

// SetObservaciones sets the "observaciones" field.
func (_u *QuoteUpdateOne) SetObservaciones(v string) *QuoteUpdateOne {
	_u.mutation.SetObservaciones(v)
	return _u
}

// SetNillableObservaciones sets the "observaciones" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableObservaciones(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetObservaciones(*v)
	}
	return _u
}

// ClearObservaciones clears the value of the "observaciones" field.
func (_u *QuoteUpdateOne) ClearObservaciones() *QuoteUpdateOne {
	_u.mutation.ClearObservaciones()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *QuoteUpdateOne) SetCreatedBy(v int) *QuoteUpdateOne {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableCreatedBy(v *int) *QuoteUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *QuoteUpdateOne) AddCreatedBy(v int) *QuoteUpdateOne {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdateOne) Mutation() *QuoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdateOne) Where(ps ...predicate.Quote) *QuoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteUpdateOne) Select(field string, fields ...string) *QuoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quote entity.
func (_u *QuoteUpdateOne) Save(ctx context.Context) (*Quote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdateOne) SaveX(ctx context.Context) *Quote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdateOne) check() error {
	if v, ok := _u.mutation.Vehiculo(); ok {
		if err := quote.VehiculoValidator(v); err != nil {
			return &ValidationError{Name: "vehiculo", err: fmt.Errorf(`ent: validator failed for field "Quote.vehiculo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrecioContado(); ok {
		if err := quote.PrecioContadoValidator(v); err != nil {
			return &ValidationError{Name: "precio_contado", err: fmt.Errorf(`ent: validator failed for field "Quote.precio_contado": %w`, err)}
		}
	}
	return nil
}

func (_u *QuoteUpdateOne) sqlSave(ctx context.Context) (_node *Quote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quote.FieldID)
		for _, f := range fields {
			if !quote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quote.FieldID {
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
		_spec.SetField(quote.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadID(); ok {
		_spec.AddField(quote.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Vehiculo(); ok {
		_spec.SetField(quote.FieldVehiculo, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrecioContado(); ok {
		_spec.SetField(quote.FieldPrecioContado, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrecioContado(); ok {
		_spec.AddField(quote.FieldPrecioContado, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Planes(); ok {
		_spec.SetField(quote.FieldPlanes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quote.FieldPlanes, value)
		})
	}
	if value, ok := _u.mutation.Observaciones(); ok {
		_spec.SetField(quote.FieldObservaciones, field.TypeString, value)
	}
	if _u.mutation.ObservacionesCleared() {
		_spec.ClearField(quote.FieldObservaciones, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(quote.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(quote.FieldCreatedBy, field.TypeInt, value)
	}
	_node = &Quote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
