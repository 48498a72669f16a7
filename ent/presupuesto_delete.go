// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alluma/crm-backend/ent/predicate"
	"github.com/alluma/crm-backend/ent/presupuesto"
)

// PresupuestoDelete is the builder for deleting a Presupuesto entity.
type PresupuestoDelete struct {
	config
	hooks    []Hook
	mutation *PresupuestoMutation
}

// Where appends a list predicates to the PresupuestoDelete builder.
func (_d *PresupuestoDelete) Where(ps ...predicate.Presupuesto) *PresupuestoDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PresupuestoDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PresupuestoDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PresupuestoDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(presupuesto.Table, sqlgraph.NewFieldSpec(presupuesto.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PresupuestoDeleteOne is the builder for deleting a single Presupuesto entity.
type PresupuestoDeleteOne struct {
	_d *PresupuestoDelete
}

// Where appends a list predicates to the PresupuestoDelete builder.
func (_d *PresupuestoDeleteOne) Where(ps ...predicate.Presupuesto) *PresupuestoDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PresupuestoDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{presupuesto.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PresupuestoDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
