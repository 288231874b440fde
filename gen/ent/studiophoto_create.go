// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/smilematch/quotes/gen/ent/studiophoto"
)

// StudioPhotoCreate is the builder for creating a StudioPhoto entity.
type StudioPhotoCreate struct {
	config
	mutation *StudioPhotoMutation
	hooks    []Hook
}

// SetProviderID sets the "provider_id" field.
func (_c *StudioPhotoCreate) SetProviderID(v uuid.UUID) *StudioPhotoCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *StudioPhotoCreate) SetPath(v string) *StudioPhotoCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudioPhotoCreate) SetCreatedAt(v time.Time) *StudioPhotoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudioPhotoCreate) SetNillableCreatedAt(v *time.Time) *StudioPhotoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudioPhotoCreate) SetID(v uuid.UUID) *StudioPhotoCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudioPhotoCreate) SetNillableID(v *uuid.UUID) *StudioPhotoCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StudioPhotoMutation object of the builder.
func (_c *StudioPhotoCreate) Mutation() *StudioPhotoMutation {
	return _c.mutation
}

// Save creates the StudioPhoto in the database.
func (_c *StudioPhotoCreate) Save(ctx context.Context) (*StudioPhoto, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudioPhotoCreate) SaveX(ctx context.Context) *StudioPhoto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudioPhotoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudioPhotoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudioPhotoCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studiophoto.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := studiophoto.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudioPhotoCreate) check() error {
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`ent: missing required field "StudioPhoto.provider_id"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "StudioPhoto.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := studiophoto.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "StudioPhoto.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudioPhoto.created_at"`)}
	}
	return nil
}

func (_c *StudioPhotoCreate) sqlSave(ctx context.Context) (*StudioPhoto, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudioPhotoCreate) createSpec() (*StudioPhoto, *sqlgraph.CreateSpec) {
	var (
		_node = &StudioPhoto{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studiophoto.Table, sqlgraph.NewFieldSpec(studiophoto.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(studiophoto.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(studiophoto.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studiophoto.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StudioPhotoCreateBulk is the builder for creating many StudioPhoto entities in bulk.
type StudioPhotoCreateBulk struct {
	config
	err      error
	builders []*StudioPhotoCreate
}

// Save creates the StudioPhoto entities in the database.
func (_c *StudioPhotoCreateBulk) Save(ctx context.Context) ([]*StudioPhoto, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudioPhoto, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudioPhotoMutation)
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
func (_c *StudioPhotoCreateBulk) SaveX(ctx context.Context) []*StudioPhoto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudioPhotoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudioPhotoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
