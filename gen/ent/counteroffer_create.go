// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/smilematch/quotes/gen/ent/counteroffer"
)

// CounterOfferCreate is the builder for creating a CounterOffer entity.
type CounterOfferCreate struct {
	config
	mutation *CounterOfferMutation
	hooks    []Hook
}

// SetQuoteID sets the "quote_id" field.
func (_c *CounterOfferCreate) SetQuoteID(v uuid.UUID) *CounterOfferCreate {
	_c.mutation.SetQuoteID(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *CounterOfferCreate) SetProviderID(v uuid.UUID) *CounterOfferCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *CounterOfferCreate) SetPayload(v json.RawMessage) *CounterOfferCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CounterOfferCreate) SetStatus(v string) *CounterOfferCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CounterOfferCreate) SetNillableStatus(v *string) *CounterOfferCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CounterOfferCreate) SetCreatedAt(v time.Time) *CounterOfferCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CounterOfferCreate) SetNillableCreatedAt(v *time.Time) *CounterOfferCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CounterOfferCreate) SetUpdatedAt(v time.Time) *CounterOfferCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CounterOfferCreate) SetNillableUpdatedAt(v *time.Time) *CounterOfferCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CounterOfferCreate) SetID(v uuid.UUID) *CounterOfferCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CounterOfferCreate) SetNillableID(v *uuid.UUID) *CounterOfferCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CounterOfferMutation object of the builder.
func (_c *CounterOfferCreate) Mutation() *CounterOfferMutation {
	return _c.mutation
}

// Save creates the CounterOffer in the database.
func (_c *CounterOfferCreate) Save(ctx context.Context) (*CounterOffer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CounterOfferCreate) SaveX(ctx context.Context) *CounterOffer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CounterOfferCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CounterOfferCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CounterOfferCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := counteroffer.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := counteroffer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := counteroffer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := counteroffer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CounterOfferCreate) check() error {
	if _, ok := _c.mutation.QuoteID(); !ok {
		return &ValidationError{Name: "quote_id", err: errors.New(`ent: missing required field "CounterOffer.quote_id"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`ent: missing required field "CounterOffer.provider_id"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "CounterOffer.payload"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CounterOffer.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := counteroffer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CounterOffer.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CounterOffer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CounterOffer.updated_at"`)}
	}
	return nil
}

func (_c *CounterOfferCreate) sqlSave(ctx context.Context) (*CounterOffer, error) {
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

func (_c *CounterOfferCreate) createSpec() (*CounterOffer, *sqlgraph.CreateSpec) {
	var (
		_node = &CounterOffer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(counteroffer.Table, sqlgraph.NewFieldSpec(counteroffer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.QuoteID(); ok {
		_spec.SetField(counteroffer.FieldQuoteID, field.TypeUUID, value)
		_node.QuoteID = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(counteroffer.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(counteroffer.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(counteroffer.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(counteroffer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(counteroffer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CounterOfferCreateBulk is the builder for creating many CounterOffer entities in bulk.
type CounterOfferCreateBulk struct {
	config
	err      error
	builders []*CounterOfferCreate
}

// Save creates the CounterOffer entities in the database.
func (_c *CounterOfferCreateBulk) Save(ctx context.Context) ([]*CounterOffer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CounterOffer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CounterOfferMutation)
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
func (_c *CounterOfferCreateBulk) SaveX(ctx context.Context) []*CounterOffer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CounterOfferCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CounterOfferCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
