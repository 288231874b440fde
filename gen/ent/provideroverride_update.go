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
	"github.com/smilematch/quotes/gen/ent/provideroverride"
)

// ProviderOverrideUpdate is the builder for updating ProviderOverride entities.
type ProviderOverrideUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderOverrideMutation
}

// Where appends a list predicates to the ProviderOverrideUpdate builder.
func (_u *ProviderOverrideUpdate) Where(ps ...predicate.ProviderOverride) *ProviderOverrideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *ProviderOverrideUpdate) SetProviderID(v uuid.UUID) *ProviderOverrideUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *ProviderOverrideUpdate) SetNillableProviderID(v *uuid.UUID) *ProviderOverrideUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetCatalogItemID sets the "catalog_item_id" field.
func (_u *ProviderOverrideUpdate) SetCatalogItemID(v int) *ProviderOverrideUpdate {
	_u.mutation.ResetCatalogItemID()
	_u.mutation.SetCatalogItemID(v)
	return _u
}

// SetNillableCatalogItemID sets the "catalog_item_id" field if the given value is not nil.
func (_u *ProviderOverrideUpdate) SetNillableCatalogItemID(v *int) *ProviderOverrideUpdate {
	if v != nil {
		_u.SetCatalogItemID(*v)
	}
	return _u
}

// AddCatalogItemID adds value to the "catalog_item_id" field.
func (_u *ProviderOverrideUpdate) AddCatalogItemID(v int) *ProviderOverrideUpdate {
	_u.mutation.AddCatalogItemID(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProviderOverrideUpdate) SetPrice(v float64) *ProviderOverrideUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProviderOverrideUpdate) SetNillablePrice(v *float64) *ProviderOverrideUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProviderOverrideUpdate) AddPrice(v float64) *ProviderOverrideUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *ProviderOverrideUpdate) ClearPrice() *ProviderOverrideUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetActive sets the "active" field.
func (_u *ProviderOverrideUpdate) SetActive(v bool) *ProviderOverrideUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ProviderOverrideUpdate) SetNillableActive(v *bool) *ProviderOverrideUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProviderOverrideUpdate) SetCreatedAt(v time.Time) *ProviderOverrideUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProviderOverrideUpdate) SetNillableCreatedAt(v *time.Time) *ProviderOverrideUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderOverrideUpdate) SetUpdatedAt(v time.Time) *ProviderOverrideUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderOverrideMutation object of the builder.
func (_u *ProviderOverrideUpdate) Mutation() *ProviderOverrideMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderOverrideUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderOverrideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderOverrideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderOverrideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderOverrideUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provideroverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderOverrideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(provideroverride.Table, provideroverride.Columns, sqlgraph.NewFieldSpec(provideroverride.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(provideroverride.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CatalogItemID(); ok {
		_spec.SetField(provideroverride.FieldCatalogItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCatalogItemID(); ok {
		_spec.AddField(provideroverride.FieldCatalogItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(provideroverride.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(provideroverride.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(provideroverride.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(provideroverride.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(provideroverride.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provideroverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provideroverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderOverrideUpdateOne is the builder for updating a single ProviderOverride entity.
type ProviderOverrideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderOverrideMutation
}

// SetProviderID sets the "provider_id" field.
func (_u *ProviderOverrideUpdateOne) SetProviderID(v uuid.UUID) *ProviderOverrideUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *ProviderOverrideUpdateOne) SetNillableProviderID(v *uuid.UUID) *ProviderOverrideUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetCatalogItemID sets the "catalog_item_id" field.
func (_u *ProviderOverrideUpdateOne) SetCatalogItemID(v int) *ProviderOverrideUpdateOne {
	_u.mutation.ResetCatalogItemID()
	_u.mutation.SetCatalogItemID(v)
	return _u
}

// SetNillableCatalogItemID sets the "catalog_item_id" field if the given value is not nil.
func (_u *ProviderOverrideUpdateOne) SetNillableCatalogItemID(v *int) *ProviderOverrideUpdateOne {
	if v != nil {
		_u.SetCatalogItemID(*v)
	}
	return _u
}

// AddCatalogItemID adds value to the "catalog_item_id" field.
func (_u *ProviderOverrideUpdateOne) AddCatalogItemID(v int) *ProviderOverrideUpdateOne {
	_u.mutation.AddCatalogItemID(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProviderOverrideUpdateOne) SetPrice(v float64) *ProviderOverrideUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProviderOverrideUpdateOne) SetNillablePrice(v *float64) *ProviderOverrideUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProviderOverrideUpdateOne) AddPrice(v float64) *ProviderOverrideUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *ProviderOverrideUpdateOne) ClearPrice() *ProviderOverrideUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetActive sets the "active" field.
func (_u *ProviderOverrideUpdateOne) SetActive(v bool) *ProviderOverrideUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ProviderOverrideUpdateOne) SetNillableActive(v *bool) *ProviderOverrideUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProviderOverrideUpdateOne) SetCreatedAt(v time.Time) *ProviderOverrideUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProviderOverrideUpdateOne) SetNillableCreatedAt(v *time.Time) *ProviderOverrideUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderOverrideUpdateOne) SetUpdatedAt(v time.Time) *ProviderOverrideUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderOverrideMutation object of the builder.
func (_u *ProviderOverrideUpdateOne) Mutation() *ProviderOverrideMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderOverrideUpdate builder.
func (_u *ProviderOverrideUpdateOne) Where(ps ...predicate.ProviderOverride) *ProviderOverrideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderOverrideUpdateOne) Select(field string, fields ...string) *ProviderOverrideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderOverride entity.
func (_u *ProviderOverrideUpdateOne) Save(ctx context.Context) (*ProviderOverride, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderOverrideUpdateOne) SaveX(ctx context.Context) *ProviderOverride {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderOverrideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderOverrideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderOverrideUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provideroverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderOverrideUpdateOne) sqlSave(ctx context.Context) (_node *ProviderOverride, err error) {
	_spec := sqlgraph.NewUpdateSpec(provideroverride.Table, provideroverride.Columns, sqlgraph.NewFieldSpec(provideroverride.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderOverride.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, provideroverride.FieldID)
		for _, f := range fields {
			if !provideroverride.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != provideroverride.FieldID {
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
		_spec.SetField(provideroverride.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CatalogItemID(); ok {
		_spec.SetField(provideroverride.FieldCatalogItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCatalogItemID(); ok {
		_spec.AddField(provideroverride.FieldCatalogItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(provideroverride.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(provideroverride.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(provideroverride.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(provideroverride.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(provideroverride.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provideroverride.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProviderOverride{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provideroverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
