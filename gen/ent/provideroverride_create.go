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
	"github.com/smilematch/quotes/gen/ent/provideroverride"
)

// ProviderOverrideCreate is the builder for creating a ProviderOverride entity.
type ProviderOverrideCreate struct {
	config
	mutation *ProviderOverrideMutation
	hooks    []Hook
}

// SetProviderID sets the "provider_id" field.
func (_c *ProviderOverrideCreate) SetProviderID(v uuid.UUID) *ProviderOverrideCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetCatalogItemID sets the "catalog_item_id" field.
func (_c *ProviderOverrideCreate) SetCatalogItemID(v int) *ProviderOverrideCreate {
	_c.mutation.SetCatalogItemID(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *ProviderOverrideCreate) SetPrice(v float64) *ProviderOverrideCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ProviderOverrideCreate) SetNillablePrice(v *float64) *ProviderOverrideCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ProviderOverrideCreate) SetActive(v bool) *ProviderOverrideCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ProviderOverrideCreate) SetNillableActive(v *bool) *ProviderOverrideCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProviderOverrideCreate) SetCreatedAt(v time.Time) *ProviderOverrideCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProviderOverrideCreate) SetNillableCreatedAt(v *time.Time) *ProviderOverrideCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProviderOverrideCreate) SetUpdatedAt(v time.Time) *ProviderOverrideCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProviderOverrideCreate) SetNillableUpdatedAt(v *time.Time) *ProviderOverrideCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProviderOverrideMutation object of the builder.
func (_c *ProviderOverrideCreate) Mutation() *ProviderOverrideMutation {
	return _c.mutation
}

// Save creates the ProviderOverride in the database.
func (_c *ProviderOverrideCreate) Save(ctx context.Context) (*ProviderOverride, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderOverrideCreate) SaveX(ctx context.Context) *ProviderOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderOverrideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderOverrideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderOverrideCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := provideroverride.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := provideroverride.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := provideroverride.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderOverrideCreate) check() error {
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`ent: missing required field "ProviderOverride.provider_id"`)}
	}
	if _, ok := _c.mutation.CatalogItemID(); !ok {
		return &ValidationError{Name: "catalog_item_id", err: errors.New(`ent: missing required field "ProviderOverride.catalog_item_id"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ProviderOverride.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProviderOverride.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProviderOverride.updated_at"`)}
	}
	return nil
}

func (_c *ProviderOverrideCreate) sqlSave(ctx context.Context) (*ProviderOverride, error) {
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

func (_c *ProviderOverrideCreate) createSpec() (*ProviderOverride, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderOverride{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(provideroverride.Table, sqlgraph.NewFieldSpec(provideroverride.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(provideroverride.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.CatalogItemID(); ok {
		_spec.SetField(provideroverride.FieldCatalogItemID, field.TypeInt, value)
		_node.CatalogItemID = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(provideroverride.FieldPrice, field.TypeFloat64, value)
		_node.Price = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(provideroverride.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(provideroverride.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(provideroverride.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProviderOverrideCreateBulk is the builder for creating many ProviderOverride entities in bulk.
type ProviderOverrideCreateBulk struct {
	config
	err      error
	builders []*ProviderOverrideCreate
}

// Save creates the ProviderOverride entities in the database.
func (_c *ProviderOverrideCreateBulk) Save(ctx context.Context) ([]*ProviderOverride, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderOverride, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderOverrideMutation)
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
func (_c *ProviderOverrideCreateBulk) SaveX(ctx context.Context) []*ProviderOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderOverrideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderOverrideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
