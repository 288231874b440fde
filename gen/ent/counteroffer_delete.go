// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smilematch/quotes/gen/ent/counteroffer"
	"github.com/smilematch/quotes/gen/ent/predicate"
)

// CounterOfferDelete is the builder for deleting a CounterOffer entity.
type CounterOfferDelete struct {
	config
	hooks    []Hook
	mutation *CounterOfferMutation
}

// Where appends a list predicates to the CounterOfferDelete builder.
func (_d *CounterOfferDelete) Where(ps ...predicate.CounterOffer) *CounterOfferDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CounterOfferDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CounterOfferDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CounterOfferDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(counteroffer.Table, sqlgraph.NewFieldSpec(counteroffer.FieldID, field.TypeUUID))
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

// CounterOfferDeleteOne is the builder for deleting a single CounterOffer entity.
type CounterOfferDeleteOne struct {
	_d *CounterOfferDelete
}

// Where appends a list predicates to the CounterOfferDelete builder.
func (_d *CounterOfferDeleteOne) Where(ps ...predicate.CounterOffer) *CounterOfferDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CounterOfferDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{counteroffer.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CounterOfferDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
