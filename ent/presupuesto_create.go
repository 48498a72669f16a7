// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/presupuesto"
	"github.com/alluma/crm-backend/ent/schema"
)

// PresupuestoCreate is the builder for creating a Presupuesto entity.
type PresupuestoCreate struct {
	config
	mutation *PresupuestoMutation
	hooks    []Hook
}

// SetModelo sets the "modelo" field.
func (_c *PresupuestoCreate) SetModelo(v string) *PresupuestoCreate {
	_c.mutation.SetModelo(v)
	return _c
}

// SetMarca sets the "marca" field.
func (_c *PresupuestoCreate) SetMarca(v string) *PresupuestoCreate {
	_c.mutation.SetMarca(v)
	return _c
}

// SetImagenURL sets the "imagen_url" field.
func (_c *PresupuestoCreate) SetImagenURL(v string) *PresupuestoCreate {
	_c.mutation.SetImagenURL(v)
	return _c
}

// SetNillableImagenURL sets the "imagen_url" field if the given value is not nil.
func (_c *PresupuestoCreate) SetNillableImagenURL(v *string) *PresupuestoCreate {
	if v != nil {
		_c.SetImagenURL(*v)
	}
	return _c
}

// SetPrecioContado sets the "precio_contado" field.
func (_c *PresupuestoCreate) SetPrecioContado(v float64) *PresupuestoCreate {
	_c.mutation.SetPrecioContado(v)
	return _c
}

// SetNillablePrecioContado sets the "precio_contado" field if the given value is not nil.
func (_c *PresupuestoCreate) SetNillablePrecioContado(v *float64) *PresupuestoCreate {
	if v != nil {
		_c.SetPrecioContado(*v)
	}
	return _c
}

// SetEspecificacionesTecnicas sets the "especificaciones_tecnicas" field.
func (_c *PresupuestoCreate) SetEspecificacionesTecnicas(v string) *PresupuestoCreate {
	_c.mutation.SetEspecificacionesTecnicas(v)
	return _c
}

// SetNillableEspecificacionesTecnicas sets the "especificaciones_tecnicas" field if the given value is not nil.
func (_c *PresupuestoCreate) SetNillableEspecificacionesTecnicas(v *string) *PresupuestoCreate {
	if v != nil {
		_c.SetEspecificacionesTecnicas(*v)
	}
	return _c
}

// SetPlanesCuotas sets the "planes_cuotas" field.
func (_c *PresupuestoCreate) SetPlanesCuotas(v []schema.QuotePlan) *PresupuestoCreate {
	_c.mutation.SetPlanesCuotas(v)
	return _c
}

// SetBonificaciones sets the "bonificaciones" field.
func (_c *PresupuestoCreate) SetBonificaciones(v string) *PresupuestoCreate {
	_c.mutation.SetBonificaciones(v)
	return _c
}

// SetNillableBonificaciones sets the "bonificaciones" field if the given value is not nil.
func (_c *PresupuestoCreate) SetNillableBonificaciones(v *string) *PresupuestoCreate {
	if v != nil {
		_c.SetBonificaciones(*v)
	}
	return _c
}

// SetAnticipo sets the "anticipo" field.
func (_c *PresupuestoCreate) SetAnticipo(v float64) *PresupuestoCreate {
	_c.mutation.SetAnticipo(v)
	return _c
}

// SetNillableAnticipo sets the "anticipo" field if the given value is not nil.
func (_c *PresupuestoCreate) SetNillableAnticipo(v *float64) *PresupuestoCreate {
	if v != nil {
		_c.SetAnticipo(*v)
	}
	return _c
}

// SetActivo sets the "activo" field.
func (_c *PresupuestoCreate) SetActivo(v bool) *PresupuestoCreate {
	_c.mutation.SetActivo(v)
	return _c
}

// SetNillableActivo sets the "activo" field if the given value is not nil.
func (_c *PresupuestoCreate) SetNillableActivo(v *bool) *PresupuestoCreate {
	if v != nil {
		_c.SetActivo(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PresupuestoCreate) SetCreatedBy(v int) *PresupuestoCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *PresupuestoCreate) SetNillableCreatedBy(v *int) *PresupuestoCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PresupuestoCreate) SetCreatedAt(v time.Time) *PresupuestoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PresupuestoCreate) SetNillableCreatedAt(v *time.Time) *PresupuestoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PresupuestoMutation object of the builder.
func (_c *PresupuestoCreate) Mutation() *PresupuestoMutation {
	return _c.mutation
}

// Save creates the Presupuesto in the database.
func (_c *PresupuestoCreate) Save(ctx context.Context) (*Presupuesto, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PresupuestoCreate) SaveX(ctx context.Context) *Presupuesto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PresupuestoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PresupuestoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PresupuestoCreate) defaults() {
	if _, ok := _c.mutation.Activo(); !ok {
		v := presupuesto.DefaultActivo
		_c.mutation.SetActivo(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := presupuesto.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PresupuestoCreate) check() error {
	if _, ok := _c.mutation.Modelo(); !ok {
		return &ValidationError{Name: "modelo", err: errors.New(`ent: missing required field "Presupuesto.modelo"`)}
	}
	if v, ok := _c.mutation.Modelo(); ok {
		if err := presupuesto.ModeloValidator(v); err != nil {
			return &ValidationError{Name: "modelo", err: fmt.Errorf(`ent: validator failed for field "Presupuesto.modelo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Marca(); !ok {
		return &ValidationError{Name: "marca", err: errors.New(`ent: missing required field "Presupuesto.marca"`)}
	}
	if v, ok := _c.mutation.Marca(); ok {
		if err := presupuesto.MarcaValidator(v); err != nil {
			return &ValidationError{Name: "marca", err: fmt.Errorf(`ent: validator failed for field "Presupuesto.marca": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Activo(); !ok {
		return &ValidationError{Name: "activo", err: errors.New(`ent: missing required field "Presupuesto.activo"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Presupuesto.created_at"`)}
	}
	return nil
}

func (_c *PresupuestoCreate) sqlSave(ctx context.Context) (*Presupuesto, error) {
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

func (_c *PresupuestoCreate) createSpec() (*Presupuesto, *sqlgraph.CreateSpec) {
	var (
		_node = &Presupuesto{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(presupuesto.Table, sqlgraph.NewFieldSpec(presupuesto.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Modelo(); ok {
		_spec.SetField(presupuesto.FieldModelo, field.TypeString, value)
		_node.Modelo = value
	}
	if value, ok := _c.mutation.Marca(); ok {
		_spec.SetField(presupuesto.FieldMarca, field.TypeString, value)
		_node.Marca = value
	}
	if value, ok := _c.mutation.ImagenURL(); ok {
		_spec.SetField(presupuesto.FieldImagenURL, field.TypeString, value)
		_node.ImagenURL = value
	}
	if value, ok := _c.mutation.PrecioContado(); ok {
		_spec.SetField(presupuesto.FieldPrecioContado, field.TypeFloat64, value)
		_node.PrecioContado = value
	}
	if value, ok := _c.mutation.EspecificacionesTecnicas(); ok {
		_spec.SetField(presupuesto.FieldEspecificacionesTecnicas, field.TypeString, value)
		_node.EspecificacionesTecnicas = value
	}
	if value, ok := _c.mutation.PlanesCuotas(); ok {
		_spec.SetField(presupuesto.FieldPlanesCuotas, field.TypeJSON, value)
		_node.PlanesCuotas = value
	}
	if value, ok := _c.mutation.Bonificaciones(); ok {
		_spec.SetField(presupuesto.FieldBonificaciones, field.TypeString, value)
		_node.Bonificaciones = value
	}
	if value, ok := _c.mutation.Anticipo(); ok {
		_spec.SetField(presupuesto.FieldAnticipo, field.TypeFloat64, value)
		_node.Anticipo = value
	}
	if value, ok := _c.mutation.Activo(); ok {
		_spec.SetField(presupuesto.FieldActivo, field.TypeBool, value)
		_node.Activo = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(presupuesto.FieldCreatedBy, field.TypeInt, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(presupuesto.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PresupuestoCreateBulk is the builder for creating many Presupuesto entities in bulk.
type PresupuestoCreateBulk struct {
	config
	err      error
	builders []*PresupuestoCreate
}

// Save creates the Presupuesto entities in the database.
func (_c *PresupuestoCreateBulk) Save(ctx context.Context) ([]*Presupuesto, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Presupuesto, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PresupuestoMutation)
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
func (_c *PresupuestoCreateBulk) SaveX(ctx context.Context) []*Presupuesto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PresupuestoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PresupuestoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
