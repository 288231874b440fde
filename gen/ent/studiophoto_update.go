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
	"github.com/google/uuid"
	"github.com/smilematch/quotes/gen/ent/predicate"
	"github.com/smilematch/quotes/gen/ent/studiophoto"
)

// StudioPhotoUpdate is the builder for updating StudioPhoto entities.
type StudioPhotoUpdate struct {
	config
	hooks    []Hook
	mutation *StudioPhotoMutation
}

// Where appends a list predicates to the StudioPhotoUpdate builder.
func (_u *StudioPhotoUpdate) Where(ps ...predicate.StudioPhoto) *StudioPhotoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *StudioPhotoUpdate) SetProviderID(v uuid.UUID) *StudioPhotoUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *StudioPhotoUpdate) SetNillableProviderID(v *uuid.UUID) *StudioPhotoUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *StudioPhotoUpdate) SetPath(v string) *StudioPhotoUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *StudioPhotoUpdate) SetNillablePath(v *string) *StudioPhotoUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StudioPhotoUpdate) SetCreatedAt(v time.Time) *StudioPhotoUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StudioPhotoUpdate) SetNillableCreatedAt(v *time.Time) *StudioPhotoUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the StudioPhotoMutation object of the builder.
func (_u *StudioPhotoUpdate) Mutation() *StudioPhotoMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudioPhotoUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudioPhotoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudioPhotoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudioPhotoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudioPhotoUpdate) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := studiophoto.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "StudioPhoto.path": %w`, err)}
		}
	}
	return nil
}

func (_u *StudioPhotoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studiophoto.Table, studiophoto.Columns, sqlgraph.NewFieldSpec(studiophoto.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(studiophoto.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(studiophoto.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(studiophoto.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studiophoto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudioPhotoUpdateOne is the builder for updating a single StudioPhoto entity.
type StudioPhotoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudioPhotoMutation
}

// SetProviderID sets the "provider_id" field.
func (_u *StudioPhotoUpdateOne) SetProviderID(v uuid.UUID) *StudioPhotoUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *StudioPhotoUpdateOne) SetNillableProviderID(v *uuid.UUID) *StudioPhotoUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *StudioPhotoUpdateOne) SetPath(v string) *StudioPhotoUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *StudioPhotoUpdateOne) SetNillablePath(v *string) *StudioPhotoUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StudioPhotoUpdateOne) SetCreatedAt(v time.Time) *StudioPhotoUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StudioPhotoUpdateOne) SetNillableCreatedAt(v *time.Time) *StudioPhotoUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the StudioPhotoMutation object of the builder.
func (_u *StudioPhotoUpdateOne) Mutation() *StudioPhotoMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudioPhotoUpdate builder.
func (_u *StudioPhotoUpdateOne) Where(ps ...predicate.StudioPhoto) *StudioPhotoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudioPhotoUpdateOne) Select(field string, fields ...string) *StudioPhotoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudioPhoto entity.
func (_u *StudioPhotoUpdateOne) Save(ctx context.Context) (*StudioPhoto, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudioPhotoUpdateOne) SaveX(ctx context.Context) *StudioPhoto {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudioPhotoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudioPhotoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudioPhotoUpdateOne) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := studiophoto.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "StudioPhoto.path": %w`, err)}
		}
	}
	return nil
}

func (_u *StudioPhotoUpdateOne) sqlSave(ctx context.Context) (_node *StudioPhoto, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studiophoto.Table, studiophoto.Columns, sqlgraph.NewFieldSpec(studiophoto.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudioPhoto.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studiophoto.FieldID)
		for _, f := range fields {
			if !studiophoto.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studiophoto.FieldID {
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
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(studiophoto.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(studiophoto.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(studiophoto.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &StudioPhoto{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studiophoto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
