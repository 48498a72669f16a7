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
	"github.com/alluma/crm-backend/ent/presupuesto"
	"github.com/alluma/crm-backend/ent/schema"
)

// PresupuestoUpdate is the builder for updating Presupuesto entities.
type PresupuestoUpdate struct {
	config
	hooks    []Hook
	mutation *PresupuestoMutation
}

// Where appends a list predicates to the PresupuestoUpdate builder.
func (_u *PresupuestoUpdate) Where(ps ...predicate.Presupuesto) *PresupuestoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModelo sets the "modelo" field.
func (_u *PresupuestoUpdate) SetModelo(v string) *PresupuestoUpdate {
	_u.mutation.SetModelo(v)
	return _u
}

// SetNillableModelo sets the "modelo" field if the given value is not nil.
func (_u *PresupuestoUpdate) SetNillableModelo(v *string) *PresupuestoUpdate {
	if v != nil {
		_u.SetModelo(*v)
	}
	return _u
}

// SetMarca sets the "marca" field.
func (_u *PresupuestoUpdate) SetMarca(v string) *PresupuestoUpdate {
	_u.mutation.SetMarca(v)
	return _u
}

// SetNillableMarca sets the "marca" field if the given value is not nil.
func (_u *PresupuestoUpdate) SetNillableMarca(v *string) *PresupuestoUpdate {
	if v != nil {
		_u.SetMarca(*v)
	}
	return _u
}

// SetImagenURL sets the "imagen_url" field.
func (_u *PresupuestoUpdate) SetImagenURL(v string) *PresupuestoUpdate {
	_u.mutation.SetImagenURL(v)
	return _u
}

// SetNillableImagenURL sets the "imagen_url" field if the given value is not nil.
func (_u *PresupuestoUpdate) SetNillableImagenURL(v *string) *PresupuestoUpdate {
	if v != nil {
		_u.SetImagenURL(*v)
	}
	return _u
}

// ClearImagenURL clears the value of the "imagen_url" field.
func (_u *PresupuestoUpdate) ClearImagenURL() *PresupuestoUpdate {
	_u.mutation.ClearImagenURL()
	return _u
}

// SetPrecioContado sets the "precio_contado" field.
func (_u *PresupuestoUpdate) SetPrecioContado(v float64) *PresupuestoUpdate {
	_u.mutation.ResetPrecioContado()
	_u.mutation.SetPrecioContado(v)
	return _u
}

// SetNillablePrecioContado sets the "precio_contado" field if the given value is not nil.
func (_u *PresupuestoUpdate) SetNillablePrecioContado(v *float64) *PresupuestoUpdate {
	if v != nil {
		_u.SetPrecioContado(*v)
	}
	return _u
}

// AddPrecioContado adds value to the "precio_contado" field.
func (_u *PresupuestoUpdate) AddPrecioContado(v float64) *PresupuestoUpdate {
	_u.mutation.AddPrecioContado(v)
	return _u
}

// ClearPrecioContado clears the value of the "precio_contado" field.
func (_u *PresupuestoUpdate) ClearPrecioContado() *PresupuestoUpdate {
	_u.mutation.ClearPrecioContado()
	return _u
}

// SetEspecificacionesTecnicas sets the "especificaciones_tecnicas" field.
func (_u *PresupuestoUpdate) SetEspecificacionesTecnicas(v string) *PresupuestoUpdate {
	_u.mutation.SetEspecificacionesTecnicas(v)
	return _u
}

// SetNillableEspecificacionesTecnicas sets the "especificaciones_tecnicas" field if the given value is not nil.
func (_u *PresupuestoUpdate) SetNillableEspecificacionesTecnicas(v *string) *PresupuestoUpdate {
	if v != nil {
		_u.SetEspecificacionesTecnicas(*v)
	}
	return _u
}

// ClearEspecificacionesTecnicas clears the value of the "especificaciones_tecnicas" field.
func (_u *PresupuestoUpdate) ClearEspecificacionesTecnicas() *PresupuestoUpdate {
	_u.mutation.ClearEspecificacionesTecnicas()
	return _u
}

// SetPlanesCuotas sets the "planes_cuotas" field.
func (_u *PresupuestoUpdate) SetPlanesCuotas(v []schema.QuotePlan) *PresupuestoUpdate {
	_u.mutation.SetPlanesCuotas(v)
	return _u
}

// AppendPlanesCuotas appends value to the "planes_cuotas" field.
func (_u *PresupuestoUpdate) AppendPlanesCuotas(v []schema.QuotePlan) *PresupuestoUpdate {
	_u.mutation.AppendPlanesCuotas(v)
	return _u
}

// ClearPlanesCuotas clears the value of the "planes_cuotas" field.
func (_u *PresupuestoUpdate) ClearPlanesCuotas() *PresupuestoUpdate {
	_u.mutation.ClearPlanesCuotas()
	return _u
}

// SetBonificaciones sets the "bonificaciones" field.
func (_u *PresupuestoUpdate) SetBonificaciones(v string) *PresupuestoUpdate {
	_u.mutation.SetBonificaciones(v)
	return _u
}

// SetNillableBonificaciones sets the "bonificaciones" field if the given value is not nil.
func (_u *PresupuestoUpdate) SetNillableBonificaciones(v *string) *PresupuestoUpdate {
	if v != nil {
		_u.SetBonificaciones(*v)
	}
	return _u
}

// ClearBonificaciones clears the value of the "bonificaciones" field.
func (_u *PresupuestoUpdate) ClearBonificaciones() *PresupuestoUpdate {
	_u.mutation.ClearBonificaciones()
	return _u
}

// SetAnticipo sets the "anticipo" field.
func (_u *PresupuestoUpdate) SetAnticipo(v float64) *PresupuestoUpdate {
	_u.mutation.ResetAnticipo()
	_u.mutation.SetAnticipo(v)
	return _u
}

// SetNillableAnticipo sets the "anticipo" field if the given value is not nil.
func (_u *PresupuestoUpdate) SetNillableAnticipo(v *float64) *PresupuestoUpdate {
	if v != nil {
		_u.SetAnticipo(*v)
	}
	return _u
}

// AddAnticipo adds value to the "anticipo" field.
func (_u *PresupuestoUpdate) AddAnticipo(v float64) *PresupuestoUpdate {
	_u.mutation.AddAnticipo(v)
	return _u
}

// ClearAnticipo clears the value of the "anticipo" field.
func (_u *PresupuestoUpdate) ClearAnticipo() *PresupuestoUpdate {
	_u.mutation.ClearAnticipo()
	return _u
}

// SetActivo sets the "activo" field.
func (_u *PresupuestoUpdate) SetActivo(v bool) *PresupuestoUpdate {
	_u.mutation.SetActivo(v)
	return _u
}

// SetNillableActivo sets the "activo" field if the given value is not nil.
func (_u *PresupuestoUpdate) SetNillableActivo(v *bool) *PresupuestoUpdate {
	if v != nil {
		_u.SetActivo(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PresupuestoUpdate) SetCreatedBy(v int) *PresupuestoUpdate {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PresupuestoUpdate) SetNillableCreatedBy(v *int) *PresupuestoUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *PresupuestoUpdate) AddCreatedBy(v int) *PresupuestoUpdate {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PresupuestoUpdate) ClearCreatedBy() *PresupuestoUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the PresupuestoMutation object of the builder.
func (_u *PresupuestoUpdate) Mutation() *PresupuestoMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PresupuestoUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PresupuestoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PresupuestoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PresupuestoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PresupuestoUpdate) check() error {
	if v, ok := _u.mutation.Modelo(); ok {
		if err := presupuesto.ModeloValidator(v); err != nil {
			return &ValidationError{Name: "modelo", err: fmt.Errorf(`ent: validator failed for field "Presupuesto.modelo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Marca(); ok {
		if err := presupuesto.MarcaValidator(v); err != nil {
			return &ValidationError{Name: "marca", err: fmt.Errorf(`ent: validator failed for field "Presupuesto.marca": %w`, err)}
		}
	}
	return nil
}

func (_u *PresupuestoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(presupuesto.Table, presupuesto.Columns, sqlgraph.NewFieldSpec(presupuesto.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Modelo(); ok {
		_spec.SetField(presupuesto.FieldModelo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Marca(); ok {
		_spec.SetField(presupuesto.FieldMarca, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagenURL(); ok {
		_spec.SetField(presupuesto.FieldImagenURL, field.TypeString, value)
	}
	if _u.mutation.ImagenURLCleared() {
		_spec.ClearField(presupuesto.FieldImagenURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrecioContado(); ok {
		_spec.SetField(presupuesto.FieldPrecioContado, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrecioContado(); ok {
		_spec.AddField(presupuesto.FieldPrecioContado, field.TypeFloat64, value)
	}
	if _u.mutation.PrecioContadoCleared() {
		_spec.ClearField(presupuesto.FieldPrecioContado, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EspecificacionesTecnicas(); ok {
		_spec.SetField(presupuesto.FieldEspecificacionesTecnicas, field.TypeString, value)
	}
	if _u.mutation.EspecificacionesTecnicasCleared() {
		_spec.ClearField(presupuesto.FieldEspecificacionesTecnicas, field.TypeString)
	}
	if value, ok := _u.mutation.PlanesCuotas(); ok {
		_spec.SetField(presupuesto.FieldPlanesCuotas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanesCuotas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, presupuesto.FieldPlanesCuotas, value)
		})
	}
	if _u.mutation.PlanesCuotasCleared() {
		_spec.ClearField(presupuesto.FieldPlanesCuotas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bonificaciones(); ok {
		_spec.SetField(presupuesto.FieldBonificaciones, field.TypeString, value)
	}
	if _u.mutation.BonificacionesCleared() {
		_spec.ClearField(presupuesto.FieldBonificaciones, field.TypeString)
	}
	if value, ok := _u.mutation.Anticipo(); ok {
		_spec.SetField(presupuesto.FieldAnticipo, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnticipo(); ok {
		_spec.AddField(presupuesto.FieldAnticipo, field.TypeFloat64, value)
	}
	if _u.mutation.AnticipoCleared() {
		_spec.ClearField(presupuesto.FieldAnticipo, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Activo(); ok {
		_spec.SetField(presupuesto.FieldActivo, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(presupuesto.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(presupuesto.FieldCreatedBy, field.TypeInt, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(presupuesto.FieldCreatedBy, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{presupuesto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PresupuestoUpdateOne is the builder for updating a single Presupuesto entity.
type PresupuestoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PresupuestoMutation
}

// SetModelo sets the "modelo" field.
func (_u *PresupuestoUpdateOne) SetModelo(v string) *PresupuestoUpdateOne {
	_u.mutation.SetModelo(v)
	return _u
}

// SetNillableModelo sets the "modelo" field if the given value is not nil.
func (_u *PresupuestoUpdateOne) SetNillableModelo(v *string) *PresupuestoUpdateOne {
	if v != nil {
		_u.SetModelo(*v)
	}
	return _u
}

// SetMarca sets the "marca" field.
func (_u *PresupuestoUpdateOne) SetMarca(v string) *PresupuestoUpdateOne {
	_u.mutation.SetMarca(v)
	return _u
}

// SetNillableMarca sets the "marca" field if the given value is not nil.
func (_u *PresupuestoUpdateOne) SetNillableMarca(v *string) *PresupuestoUpdateOne {
	if v != nil {
		_u.SetMarca(*v)
	}
	return _u
}

// SetImagenURL sets the "imagen_url" field.
func (_u *PresupuestoUpdateOne) SetImagenURL(v string) *PresupuestoUpdateOne {
	_u.mutation.SetImagenURL(v)
	return _u
}

// SetNillableImagenURL sets the "imagen_url" field if the given value is not nil.
func (_u *PresupuestoUpdateOne) SetNillableImagenURL(v *string) *PresupuestoUpdateOne {
	if v != nil {
		_u.SetImagenURL(*v)
	}
	return _u
}

// ClearImagenURL clears the value of the "imagen_url" field.
func (_u *PresupuestoUpdateOne) ClearImagenURL() *PresupuestoUpdateOne {
	_u.mutation.ClearImagenURL()
	return _u
}

// SetPrecioContado sets the "precio_contado" field.
func (_u *PresupuestoUpdateOne) SetPrecioContado(v float64) *PresupuestoUpdateOne {
	_u.mutation.ResetPrecioContado()
	_u.mutation.SetPrecioContado(v)
	return _u
}

// SetNillablePrecioContado sets the "precio_contado" field if the given value is not nil.
func (_u *PresupuestoUpdateOne) SetNillablePrecioContado(v *float64) *PresupuestoUpdateOne {
	if v != nil {
		_u.SetPrecioContado(*v)
	}
	return _u
}

// AddPrecioContado adds value to the "precio_contado" field.
func (_u *PresupuestoUpdateOne) AddPrecioContado(v float64) *PresupuestoUpdateOne {
	_u.mutation.AddPrecioContado(v)
	return _u
}

// ClearPrecioContado clears the value of the "precio_contado" field.
func (_u *PresupuestoUpdateOne) ClearPrecioContado() *PresupuestoUpdateOne {
	_u.mutation.ClearPrecioContado()
	return _u
}

// SetEspecificacionesTecnicas sets the "especificaciones_tecnicas" field.
func (_u *PresupuestoUpdateOne) SetEspecificacionesTecnicas(v string) *PresupuestoUpdateOne {
	_u.mutation.SetEspecificacionesTecnicas(v)
	return _u
}

// SetNillableEspecificacionesTecnicas sets the "especificaciones_tecnicas" field if the given value is not nil.
func (_u *PresupuestoUpdateOne) SetNillableEspecificacionesTecnicas(v *string) *PresupuestoUpdateOne {
	if v != nil {
		_u.SetEspecificacionesTecnicas(*v)
	}
	return _u
}

// ClearEspecificacionesTecnicas clears the value of the "especificaciones_tecnicas" field.
func (_u *PresupuestoUpdateOne) ClearEspecificacionesTecnicas() *PresupuestoUpdateOne {
	_u.mutation.ClearEspecificacionesTecnicas()
	return _u
}

// SetPlanesCuotas sets the "planes_cuotas" field.
func (_u *PresupuestoUpdateOne) SetPlanesCuotas(v []schema.QuotePlan) *PresupuestoUpdateOne {
	_u.mutation.SetPlanesCuotas(v)
	return _u
}

// AppendPlanesCuotas appends value to the "planes_cuotas" field.
func (_u *PresupuestoUpdateOne) AppendPlanesCuotas(v []schema.QuotePlan) *PresupuestoUpdateOne {
	_u.mutation.AppendPlanesCuotas(v)
	return _u
}

// ClearPlanesCuotas clears the value of the "planes_cuotas" field.
func (_u *PresupuestoUpdateOne) ClearPlanesCuotas() *PresupuestoUpdateOne {
	_u.mutation.ClearPlanesCuotas()
	return _u
}

// SetBonificaciones sets the "bonificaciones" field.
func (_u *PresupuestoUpdateOne) SetBonificaciones(v string) *PresupuestoUpdateOne {
	_u.mutation.SetBonificaciones(v)
	return _u
}

// SetNillableBonificaciones sets the "bonificaciones" field if the given value is not nil.
func (_u *PresupuestoUpdateOne) SetNillableBonificaciones(v *string) *PresupuestoUpdateOne {
	if v != nil {
		_u.SetBonificaciones(*v)
	}
	return _u
}

// ClearBonificaciones clears the value of the "bonificaciones" field.
func (_u *PresupuestoUpdateOne) ClearBonificaciones() *PresupuestoUpdateOne {
	_u.mutation.ClearBonificaciones()
	return _u
}

// SetAnticipo sets the "anticipo" field.
func (_u *PresupuestoUpdateOne) SetAnticipo(v float64) *PresupuestoUpdateOne {
	_u.mutation.ResetAnticipo()
	_u.mutation.SetAnticipo(v)
	return _u
}

// SetNillableAnticipo sets the "anticipo" field if the given value is not nil.
func (_u *PresupuestoUpdateOne) SetNillableAnticipo(v *float64) *PresupuestoUpdateOne {
	if v != nil {
		_u.SetAnticipo(*v)
	}
	return _u
}

// AddAnticipo adds value to the "anticipo" field.
func (_u *PresupuestoUpdateOne) AddAnticipo(v float64) *PresupuestoUpdateOne {
	_u.mutation.AddAnticipo(v)
	return _u
}

// ClearAnticipo clears the value of the "anticipo" field.
func (_u *PresupuestoUpdateOne) ClearAnticipo() *PresupuestoUpdateOne {
	_u.mutation.ClearAnticipo()
	return _u
}

// SetActivo sets the "activo" field.
func (_u *PresupuestoUpdateOne) SetActivo(v bool) *PresupuestoUpdateOne {
	_u.mutation.SetActivo(v)
	return _u
}

// SetNillableActivo sets the "activo" field if the given value is not nil.
func (_u *PresupuestoUpdateOne) SetNillableActivo(v *bool) *PresupuestoUpdateOne {
	if v != nil {
		_u.SetActivo(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PresupuestoUpdateOne) SetCreatedBy(v int) *PresupuestoUpdateOne {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PresupuestoUpdateOne) SetNillableCreatedBy(v *int) *PresupuestoUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *PresupuestoUpdateOne) AddCreatedBy(v int) *PresupuestoUpdateOne {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PresupuestoUpdateOne) ClearCreatedBy() *PresupuestoUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the PresupuestoMutation object of the builder.
func (_u *PresupuestoUpdateOne) Mutation() *PresupuestoMutation {
	return _u.mutation
}

// Where appends a list predicates to the PresupuestoUpdate builder.
func (_u *PresupuestoUpdateOne) Where(ps ...predicate.Presupuesto) *PresupuestoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PresupuestoUpdateOne) Select(field string, fields ...string) *PresupuestoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Presupuesto entity.
func (_u *PresupuestoUpdateOne) Save(ctx context.Context) (*Presupuesto, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PresupuestoUpdateOne) SaveX(ctx context.Context) *Presupuesto {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PresupuestoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PresupuestoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PresupuestoUpdateOne) check() error {
	if v, ok := _u.mutation.Modelo(); ok {
		if err := presupuesto.ModeloValidator(v); err != nil {
			return &ValidationError{Name: "modelo", err: fmt.Errorf(`ent: validator failed for field "Presupuesto.modelo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Marca(); ok {
		if err := presupuesto.MarcaValidator(v); err != nil {
			return &ValidationError{Name: "marca", err: fmt.Errorf(`ent: validator failed for field "Presupuesto.marca": %w`, err)}
		}
	}
	return nil
}

func (_u *PresupuestoUpdateOne) sqlSave(ctx context.Context) (_node *Presupuesto, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(presupuesto.Table, presupuesto.Columns, sqlgraph.NewFieldSpec(presupuesto.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Presupuesto.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, presupuesto.FieldID)
		for _, f := range fields {
			if !presupuesto.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != presupuesto.FieldID {
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
	if value, ok := _u.mutation.Modelo(); ok {
		_spec.SetField(presupuesto.FieldModelo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Marca(); ok {
		_spec.SetField(presupuesto.FieldMarca, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagenURL(); ok {
		_spec.SetField(presupuesto.FieldImagenURL, field.TypeString, value)
	}
	if _u.mutation.ImagenURLCleared() {
		_spec.ClearField(presupuesto.FieldImagenURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrecioContado(); ok {
		_spec.SetField(presupuesto.FieldPrecioContado, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrecioContado(); ok {
		_spec.AddField(presupuesto.FieldPrecioContado, field.TypeFloat64, value)
	}
	if _u.mutation.PrecioContadoCleared() {
		_spec.ClearField(presupuesto.FieldPrecioContado, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EspecificacionesTecnicas(); ok {
		_spec.SetField(presupuesto.FieldEspecificacionesTecnicas, field.TypeString, value)
	}
	if _u.mutation.EspecificacionesTecnicasCleared() {
		_spec.ClearField(presupuesto.FieldEspecificacionesTecnicas, field.TypeString)
	}
	if value, ok := _u.mutation.PlanesCuotas(); ok {
		_spec.SetField(presupuesto.FieldPlanesCuotas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanesCuotas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, presupuesto.FieldPlanesCuotas, value)
		})
	}
	if _u.mutation.PlanesCuotasCleared() {
		_spec.ClearField(presupuesto.FieldPlanesCuotas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bonificaciones(); ok {
		_spec.SetField(presupuesto.FieldBonificaciones, field.TypeString, value)
	}
	if _u.mutation.BonificacionesCleared() {
		_spec.ClearField(presupuesto.FieldBonificaciones, field.TypeString)
	}
	if value, ok := _u.mutation.Anticipo(); ok {
		_spec.SetField(presupuesto.FieldAnticipo, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnticipo(); ok {
		_spec.AddField(presupuesto.FieldAnticipo, field.TypeFloat64, value)
	}
	if _u.mutation.AnticipoCleared() {
		_spec.ClearField(presupuesto.FieldAnticipo, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Activo(); ok {
		_spec.SetField(presupuesto.FieldActivo, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(presupuesto.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(presupuesto.FieldCreatedBy, field.TypeInt, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(presupuesto.FieldCreatedBy, field.TypeInt)
	}
	_node = &Presupuesto{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{presupuesto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
