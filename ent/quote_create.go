// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/quote"
	"github.com/alluma/crm-backend/ent/schema"
)

// QuoteCreate is the builder for creating a Quote entity.
type QuoteCreate struct {
	config
	mutation *QuoteMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *QuoteCreate) SetLeadID(v int) *QuoteCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetVehiculo sets the "vehiculo" field.
func (_c *QuoteCreate) SetVehiculo(v string) *QuoteCreate {
	_c.mutation.SetVehiculo(v)
	return _c
}

// SetPrecioContado sets the "precio_contado" field.
func (_c *QuoteCreate) SetPrecioContado(v float64) *QuoteCreate {
	_c.mutation.SetPrecioContado(v)
	return _c
}

// SetPlanes sets the "planes" field.
func (_c *QuoteCreate) SetPlanes(v []schema.QuotePlan) *QuoteCreate {
	_c.mutation.SetPlanes(v)
	return _c
}

// SetObservaciones sets the "observaciones" field.
func (_c *QuoteCreate) SetObservaciones(v string) *QuoteCreate {
	_c.mutation.SetObservaciones(v)
	return _c
}

// SetNillableObservaciones sets the "observaciones" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableObservaciones(v *string) *QuoteCreate {
	if v != nil {
		_c.SetObservaciones(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *QuoteCreate) SetCreatedBy(v int) *QuoteCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuoteCreate) SetCreatedAt(v time.Time) *QuoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableCreatedAt(v *time.Time) *QuoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuoteMutation object of the builder.
func (_c *QuoteCreate) Mutation() *QuoteMutation {
	return _c.mutation
}

// Save creates the Quote in the database.
func (_c *QuoteCreate) Save(ctx context.Context) (*Quote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuoteCreate) SaveX(ctx context.Context) *Quote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuoteCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "Quote.lead_id"`)}
	}
	if _, ok := _c.mutation.Vehiculo(); !ok {
		return &ValidationError{Name: "vehiculo", err: errors.New(`ent: missing required field "Quote.vehiculo"`)}
	}
	if v, ok := _c.mutation.Vehiculo(); ok {
		if err := quote.VehiculoValidator(v); err != nil {
			return &ValidationError{Name: "vehiculo", err: fmt.Errorf(`ent: validator failed for field "Quote.vehiculo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrecioContado(); !ok {
		return &ValidationError{Name: "precio_contado", err: errors.New(`ent: missing required field "Quote.precio_contado"`)}
	}
	if v, ok := _c.mutation.PrecioContado(); ok {
		if err := quote.PrecioContadoValidator(v); err != nil {
			return &ValidationError{Name: "precio_contado", err: fmt.Errorf(`ent: validator failed for field "Quote.precio_contado": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Planes(); !ok {
		return &ValidationError{Name: "planes", err: errors.New(`ent: missing required field "Quote.planes"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Quote.created_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Quote.created_at"`)}
	}
	return nil
}

func (_c *QuoteCreate) sqlSave(ctx context.Context) (*Quote, error) {
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

func (_c *QuoteCreate) createSpec() (*Quote, *sqlgraph.CreateSpec) {
	var (
		_node = &Quote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quote.Table, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LeadID(); ok {
		_spec.SetField(quote.FieldLeadID, field.TypeInt, value)
		_node.LeadID = value
	}
	if value, ok := _c.mutation.Vehiculo(); ok {
		_spec.SetField(quote.FieldVehiculo, field.TypeString, value)
		_node.Vehiculo = value
	}
	if value, ok := _c.mutation.PrecioContado(); ok {
		_spec.SetField(quote.FieldPrecioContado, field.TypeFloat64, value)
		_node.PrecioContado = value
	}
	if value, ok := _c.mutation.Planes(); ok {
		_spec.SetField(quote.FieldPlanes, field.TypeJSON, value)
		_node.Planes = value
	}
	if value, ok := _c.mutation.Observaciones(); ok {
		_spec.SetField(quote.FieldObservaciones, field.TypeString, value)
		_node.Observaciones = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(quote.FieldCreatedBy, field.TypeInt, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuoteCreateBulk is the builder for creating many Quote entities in bulk.
type QuoteCreateBulk struct {
	config
	err      error
	builders []*QuoteCreate
}

// Save creates the Quote entities in the database.
func (_c *QuoteCreateBulk) Save(ctx context.Context) ([]*Quote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Quote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuoteMutation)
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
func (_c *QuoteCreateBulk) SaveX(ctx context.Context) []*Quote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
