// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/smilematch/quotes/gen/ent/counteroffer"
	"github.com/smilematch/quotes/gen/ent/predicate"
)

// CounterOfferUpdate is the builder for updating CounterOffer entities.
type CounterOfferUpdate struct {
	config
	hooks    []Hook
	mutation *CounterOfferMutation
}

// Where appends a list predicates to the CounterOfferUpdate builder.
func (_u *CounterOfferUpdate) Where(ps ...predicate.CounterOffer) *CounterOfferUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuoteID sets the "quote_id" field.
func (_u *CounterOfferUpdate) SetQuoteID(v uuid.UUID) *CounterOfferUpdate {
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *CounterOfferUpdate) SetNillableQuoteID(v *uuid.UUID) *CounterOfferUpdate {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *CounterOfferUpdate) SetProviderID(v uuid.UUID) *CounterOfferUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *CounterOfferUpdate) SetNillableProviderID(v *uuid.UUID) *CounterOfferUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CounterOfferUpdate) SetPayload(v json.RawMessage) *CounterOfferUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *CounterOfferUpdate) AppendPayload(v json.RawMessage) *CounterOfferUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CounterOfferUpdate) SetStatus(v string) *CounterOfferUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CounterOfferUpdate) SetNillableStatus(v *string) *CounterOfferUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CounterOfferUpdate) SetCreatedAt(v time.Time) *CounterOfferUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CounterOfferUpdate) SetNillableCreatedAt(v *time.Time) *CounterOfferUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CounterOfferUpdate) SetUpdatedAt(v time.Time) *CounterOfferUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CounterOfferMutation object of the builder.
func (_u *CounterOfferUpdate) Mutation() *CounterOfferMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CounterOfferUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CounterOfferUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CounterOfferUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CounterOfferUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CounterOfferUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := counteroffer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CounterOfferUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := counteroffer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CounterOffer.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CounterOfferUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(counteroffer.Table, counteroffer.Columns, sqlgraph.NewFieldSpec(counteroffer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuoteID(); ok {
		_spec.SetField(counteroffer.FieldQuoteID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(counteroffer.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(counteroffer.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, counteroffer.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(counteroffer.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(counteroffer.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(counteroffer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{counteroffer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CounterOfferUpdateOne is the builder for updating a single CounterOffer entity.
type CounterOfferUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CounterOfferMutation
}

// SetQuoteID sets the "quote_id" field.
func (_u *CounterOfferUpdateOne) SetQuoteID(v uuid.UUID) *CounterOfferUpdateOne {
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *CounterOfferUpdateOne) SetNillableQuoteID(v *uuid.UUID) *CounterOfferUpdateOne {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *CounterOfferUpdateOne) SetProviderID(v uuid.UUID) *CounterOfferUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *CounterOfferUpdateOne) SetNillableProviderID(v *uuid.UUID) *CounterOfferUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CounterOfferUpdateOne) SetPayload(v json.RawMessage) *CounterOfferUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *CounterOfferUpdateOne) AppendPayload(v json.RawMessage) *CounterOfferUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CounterOfferUpdateOne) SetStatus(v string) *CounterOfferUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CounterOfferUpdateOne) SetNillableStatus(v *string) *CounterOfferUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CounterOfferUpdateOne) SetCreatedAt(v time.Time) *CounterOfferUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CounterOfferUpdateOne) SetNillableCreatedAt(v *time.Time) *CounterOfferUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CounterOfferUpdateOne) SetUpdatedAt(v time.Time) *CounterOfferUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CounterOfferMutation object of the builder.
func (_u *CounterOfferUpdateOne) Mutation() *CounterOfferMutation {
	return _u.mutation
}

// Where appends a list predicates to the CounterOfferUpdate builder.
func (_u *CounterOfferUpdateOne) Where(ps ...predicate.CounterOffer) *CounterOfferUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CounterOfferUpdateOne) Select(field string, fields ...string) *CounterOfferUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CounterOffer entity.
func (_u *CounterOfferUpdateOne) Save(ctx context.Context) (*CounterOffer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CounterOfferUpdateOne) SaveX(ctx context.Context) *CounterOffer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CounterOfferUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CounterOfferUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CounterOfferUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := counteroffer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CounterOfferUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := counteroffer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CounterOffer.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CounterOfferUpdateOne) sqlSave(ctx context.Context) (_node *CounterOffer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(counteroffer.Table, counteroffer.Columns, sqlgraph.NewFieldSpec(counteroffer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CounterOffer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, counteroffer.FieldID)
		for _, f := range fields {
			if !counteroffer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != counteroffer.FieldID {
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
	if value, ok := _u.mutation.QuoteID(); ok {
		_spec.SetField(counteroffer.FieldQuoteID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(counteroffer.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(counteroffer.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, counteroffer.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(counteroffer.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(counteroffer.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(counteroffer.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CounterOffer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{counteroffer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
