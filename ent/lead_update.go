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
	"github.com/alluma/crm-backend/ent/lead"
	"github.com/alluma/crm-backend/ent/predicate"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *LeadUpdate) SetNombre(v string) *LeadUpdate {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableNombre(v *string) *LeadUpdate {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetTelefono sets the "telefono" field.
func (_u *LeadUpdate) SetTelefono(v string) *LeadUpdate {
	_u.mutation.SetTelefono(v)
	return _u
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableTelefono(v *string) *LeadUpdate {
	if v != nil {
		_u.SetTelefono(*v)
	}
	return _u
}

// SetModelo sets the "modelo" field.
func (_u *LeadUpdate) SetModelo(v string) *LeadUpdate {
	_u.mutation.SetModelo(v)
	return _u
}

// SetNillableModelo sets the "modelo" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableModelo(v *string) *LeadUpdate {
	if v != nil {
		_u.SetModelo(*v)
	}
	return _u
}

// SetFormaPago sets the "forma_pago" field.
func (_u *LeadUpdate) SetFormaPago(v string) *LeadUpdate {
	_u.mutation.SetFormaPago(v)
	return _u
}

// SetNillableFormaPago sets the "forma_pago" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFormaPago(v *string) *LeadUpdate {
	if v != nil {
		_u.SetFormaPago(*v)
	}
	return _u
}

// SetInfoUsado sets the "info_usado" field.
func (_u *LeadUpdate) SetInfoUsado(v string) *LeadUpdate {
	_u.mutation.SetInfoUsado(v)
	return _u
}

// SetNillableInfoUsado sets the "info_usado" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableInfoUsado(v *string) *LeadUpdate {
	if v != nil {
		_u.SetInfoUsado(*v)
	}
	return _u
}

// ClearInfoUsado clears the value of the "info_usado" field.
func (_u *LeadUpdate) ClearInfoUsado() *LeadUpdate {
	_u.mutation.ClearInfoUsado()
	return _u
}

// SetEntrega sets the "entrega" field.
func (_u *LeadUpdate) SetEntrega(v bool) *LeadUpdate {
	_u.mutation.SetEntrega(v)
	return _u
}

// SetNillableEntrega sets the "entrega" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEntrega(v *bool) *LeadUpdate {
	if v != nil {
		_u.SetEntrega(*v)
	}
	return _u
}

// SetNotas sets the "notas" field.
func (_u *LeadUpdate) SetNotas(v string) *LeadUpdate {
	_u.mutation.SetNotas(v)
	return _u
}

// SetNillableNotas sets the "notas" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableNotas(v *string) *LeadUpdate {
	if v != nil {
		_u.SetNotas(*v)
	}
	return _u
}

// SetEstado sets the "estado" field.
func (_u *LeadUpdate) SetEstado(v string) *LeadUpdate {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEstado(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetFuente sets the "fuente" field.
func (_u *LeadUpdate) SetFuente(v string) *LeadUpdate {
	_u.mutation.SetFuente(v)
	return _u
}

// SetNillableFuente sets the "fuente" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFuente(v *string) *LeadUpdate {
	if v != nil {
		_u.SetFuente(*v)
	}
	return _u
}

// SetFecha sets the "fecha" field.
func (_u *LeadUpdate) SetFecha(v string) *LeadUpdate {
	_u.mutation.SetFecha(v)
	return _u
}

// SetNillableFecha sets the "fecha" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFecha(v *string) *LeadUpdate {
	if v != nil {
		_u.SetFecha(*v)
	}
	return _u
}

// SetEquipo sets the "equipo" field.
func (_u *LeadUpdate) SetEquipo(v string) *LeadUpdate {
	_u.mutation.SetEquipo(v)
	return _u
}

// SetNillableEquipo sets the "equipo" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEquipo(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEquipo(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *LeadUpdate) SetAssignedTo(v int) *LeadUpdate {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAssignedTo(v *int) *LeadUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *LeadUpdate) AddAssignedTo(v int) *LeadUpdate {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *LeadUpdate) ClearAssignedTo() *LeadUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *LeadUpdate) SetCreatedBy(v int) *LeadUpdate {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCreatedBy(v *int) *LeadUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *LeadUpdate) AddCreatedBy(v int) *LeadUpdate {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *LeadUpdate) ClearCreatedBy() *LeadUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetHistorial sets the "historial" field.
func (_u *LeadUpdate) SetHistorial(v string) *LeadUpdate {
	_u.mutation.SetHistorial(v)
	return _u
}

// SetNillableHistorial sets the "historial" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableHistorial(v *string) *LeadUpdate {
	if v != nil {
		_u.SetHistorial(*v)
	}
	return _u
}

// SetLastStatusChange sets the "last_status_change" field.
func (_u *LeadUpdate) SetLastStatusChange(v time.Time) *LeadUpdate {
	_u.mutation.SetLastStatusChange(v)
	return _u
}

// SetNillableLastStatusChange sets the "last_status_change" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLastStatusChange(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetLastStatusChange(*v)
	}
	return _u
}

// ClearLastStatusChange clears the value of the "last_status_change" field.
func (_u *LeadUpdate) ClearLastStatusChange() *LeadUpdate {
	_u.mutation.ClearLastStatusChange()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := lead.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`ent: validator failed for field "Lead.nombre": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Telefono(); ok {
		if err := lead.TelefonoValidator(v); err != nil {
			return &ValidationError{Name: "telefono", err: fmt.Errorf(`ent: validator failed for field "Lead.telefono": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Modelo(); ok {
		if err := lead.ModeloValidator(v); err != nil {
			return &ValidationError{Name: "modelo", err: fmt.Errorf(`ent: validator failed for field "Lead.modelo": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(lead.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telefono(); ok {
		_spec.SetField(lead.FieldTelefono, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modelo(); ok {
		_spec.SetField(lead.FieldModelo, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormaPago(); ok {
		_spec.SetField(lead.FieldFormaPago, field.TypeString, value)
	}
	if value, ok := _u.mutation.InfoUsado(); ok {
		_spec.SetField(lead.FieldInfoUsado, field.TypeString, value)
	}
	if _u.mutation.InfoUsadoCleared() {
		_spec.ClearField(lead.FieldInfoUsado, field.TypeString)
	}
	if value, ok := _u.mutation.Entrega(); ok {
		_spec.SetField(lead.FieldEntrega, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notas(); ok {
		_spec.SetField(lead.FieldNotas, field.TypeString, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(lead.FieldEstado, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fuente(); ok {
		_spec.SetField(lead.FieldFuente, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fecha(); ok {
		_spec.SetField(lead.FieldFecha, field.TypeString, value)
	}
	if value, ok := _u.mutation.Equipo(); ok {
		_spec.SetField(lead.FieldEquipo, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(lead.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(lead.FieldAssignedTo, field.TypeInt, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(lead.FieldAssignedTo, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(lead.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(lead.FieldCreatedBy, field.TypeInt, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(lead.FieldCreatedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.Historial(); ok {
		_spec.SetField(lead.FieldHistorial, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastStatusChange(); ok {
		_spec.SetField(lead.FieldLastStatusChange, field.TypeTime, value)
	}
	if _u.mutation.LastStatusChangeCleared() {
		_spec.ClearField(lead.FieldLastStatusChange, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetNombre sets the "nombre" field.
func (_u *LeadUpdateOne) SetNombre(v string) *LeadUpdateOne {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableNombre(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetTelefono sets the "telefono" field.
func (_u *LeadUpdateOne) SetTelefono(v string) *LeadUpdateOne {
	_u.mutation.SetTelefono(v)
	return _u
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableTelefono(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetTelefono(*v)
	}
	return _u
}

// SetModelo sets the "modelo" field.
func (_u *LeadUpdateOne) SetModelo(v string) *LeadUpdateOne {
	_u.mutation.SetModelo(v)
	return _u
}

// SetNillableModelo sets the "modelo" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableModelo(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetModelo(*v)
	}
	return _u
}

// SetFormaPago sets the "forma_pago" field.
func (_u *LeadUpdateOne) SetFormaPago(v string) *LeadUpdateOne {
	_u.mutation.SetFormaPago(v)
	return _u
}

// SetNillableFormaPago sets the "forma_pago" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFormaPago(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetFormaPago(*v)
	}
	return _u
}

// SetInfoUsado sets the "info_usado" field.
func (_u *LeadUpdateOne) SetInfoUsado(v string) *LeadUpdateOne {
	_u.mutation.SetInfoUsado(v)
	return _u
}

// SetNillableInfoUsado sets the "info_usado" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableInfoUsado(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetInfoUsado(*v)
	}
	return _u
}

// ClearInfoUsado clears the value of the "info_usado" field.
func (_u *LeadUpdateOne) ClearInfoUsado() *LeadUpdateOne {
	_u.mutation.ClearInfoUsado()
	return _u
}

// SetEntrega sets the "entrega" field.
func (_u *LeadUpdateOne) SetEntrega(v bool) *LeadUpdateOne {
	_u.mutation.SetEntrega(v)
	return _u
}

// SetNillableEntrega sets the "entrega" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEntrega(v *bool) *LeadUpdateOne {
	if v != nil {
		_u.SetEntrega(*v)
	}
	return _u
}

// SetNotas sets the "notas" field.
func (_u *LeadUpdateOne) SetNotas(v string) *LeadUpdateOne {
	_u.mutation.SetNotas(v)
	return _u
}

// SetNillableNotas sets the "notas" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableNotas(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetNotas(*v)
	}
	return _u
}

// SetEstado sets the "estado" field.
func (_u *LeadUpdateOne) SetEstado(v string) *LeadUpdateOne {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEstado(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetFuente sets the "fuente" field.
func (_u *LeadUpdateOne) SetFuente(v string) *LeadUpdateOne {
	_u.mutation.SetFuente(v)
	return _u
}

// SetNillableFuente sets the "fuente" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFuente(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetFuente(*v)
	}
	return _u
}

// SetFecha sets the "fecha" field.
func (_u *LeadUpdateOne) SetFecha(v string) *LeadUpdateOne {
	_u.mutation.SetFecha(v)
	return _u
}

// SetNillableFecha sets the "fecha" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFecha(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetFecha(*v)
	}
	return _u
}

// SetEquipo sets the "equipo" field.
func (_u *LeadUpdateOne) SetEquipo(v string) *LeadUpdateOne {
	_u.mutation.SetEquipo(v)
	return _u
}

// SetNillableEquipo sets the "equipo" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEquipo(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEquipo(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *LeadUpdateOne) SetAssignedTo(v int) *LeadUpdateOne {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAssignedTo(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *LeadUpdateOne) AddAssignedTo(v int) *LeadUpdateOne {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *LeadUpdateOne) ClearAssignedTo() *LeadUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *LeadUpdateOne) SetCreatedBy(v int) *LeadUpdateOne {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCreatedBy(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *LeadUpdateOne) AddCreatedBy(v int) *LeadUpdateOne {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *LeadUpdateOne) ClearCreatedBy() *LeadUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetHistorial sets the "historial" field.
func (_u *LeadUpdateOne) SetHistorial(v string) *LeadUpdateOne {
	_u.mutation.SetHistorial(v)
	return _u
}

// SetNillableHistorial sets the "historial" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableHistorial(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetHistorial(*v)
	}
	return _u
}

// SetLastStatusChange sets the "last_status_change" field.
func (_u *LeadUpdateOne) SetLastStatusChange(v time.Time) *LeadUpdateOne {
	_u.mutation.SetLastStatusChange(v)
	return _u
}

// SetNillableLastStatusChange sets the "last_status_change" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLastStatusChange(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetLastStatusChange(*v)
	}
	return _u
}

// ClearLastStatusChange clears the value of the "last_status_change" field.
func (_u *LeadUpdateOne) ClearLastStatusChange() *LeadUpdateOne {
	_u.mutation.ClearLastStatusChange()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := lead.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`ent: validator failed for field "Lead.nombre": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Telefono(); ok {
		if err := lead.TelefonoValidator(v); err != nil {
			return &ValidationError{Name: "telefono", err: fmt.Errorf(`ent: validator failed for field "Lead.telefono": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Modelo(); ok {
		if err := lead.ModeloValidator(v); err != nil {
			return &ValidationError{Name: "modelo", err: fmt.Errorf(`ent: validator failed for field "Lead.modelo": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
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
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(lead.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telefono(); ok {
		_spec.SetField(lead.FieldTelefono, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modelo(); ok {
		_spec.SetField(lead.FieldModelo, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormaPago(); ok {
		_spec.SetField(lead.FieldFormaPago, field.TypeString, value)
	}
	if value, ok := _u.mutation.InfoUsado(); ok {
		_spec.SetField(lead.FieldInfoUsado, field.TypeString, value)
	}
	if _u.mutation.InfoUsadoCleared() {
		_spec.ClearField(lead.FieldInfoUsado, field.TypeString)
	}
	if value, ok := _u.mutation.Entrega(); ok {
		_spec.SetField(lead.FieldEntrega, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notas(); ok {
		_spec.SetField(lead.FieldNotas, field.TypeString, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(lead.FieldEstado, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fuente(); ok {
		_spec.SetField(lead.FieldFuente, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fecha(); ok {
		_spec.SetField(lead.FieldFecha, field.TypeString, value)
	}
	if value, ok := _u.mutation.Equipo(); ok {
		_spec.SetField(lead.FieldEquipo, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(lead.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(lead.FieldAssignedTo, field.TypeInt, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(lead.FieldAssignedTo, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(lead.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(lead.FieldCreatedBy, field.TypeInt, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(lead.FieldCreatedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.Historial(); ok {
		_spec.SetField(lead.FieldHistorial, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastStatusChange(); ok {
		_spec.SetField(lead.FieldLastStatusChange, field.TypeTime, value)
	}
	if _u.mutation.LastStatusChangeCleared() {
		_spec.ClearField(lead.FieldLastStatusChange, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
