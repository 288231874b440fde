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
	"github.com/smilematch/quotes/gen/ent/provider"
)

// ProviderUpdate is the builder for updating Provider entities.
type ProviderUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderMutation
}

// Where appends a list predicates to the ProviderUpdate builder.
func (_u *ProviderUpdate) Where(ps ...predicate.Provider) *ProviderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProviderUpdate) SetUserID(v uuid.UUID) *ProviderUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableUserID(v *uuid.UUID) *ProviderUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *ProviderUpdate) SetBusinessName(v string) *ProviderUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableBusinessName(v *string) *ProviderUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProviderUpdate) SetEmail(v string) *ProviderUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableEmail(v *string) *ProviderUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProviderUpdate) SetDescription(v string) *ProviderUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableDescription(v *string) *ProviderUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProviderUpdate) ClearDescription() *ProviderUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ProviderUpdate) SetLatitude(v float64) *ProviderUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableLatitude(v *float64) *ProviderUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ProviderUpdate) AddLatitude(v float64) *ProviderUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ProviderUpdate) SetLongitude(v float64) *ProviderUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableLongitude(v *float64) *ProviderUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ProviderUpdate) AddLongitude(v float64) *ProviderUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetPriceListCompletedAt sets the "price_list_completed_at" field.
func (_u *ProviderUpdate) SetPriceListCompletedAt(v time.Time) *ProviderUpdate {
	_u.mutation.SetPriceListCompletedAt(v)
	return _u
}

// SetNillablePriceListCompletedAt sets the "price_list_completed_at" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillablePriceListCompletedAt(v *time.Time) *ProviderUpdate {
	if v != nil {
		_u.SetPriceListCompletedAt(*v)
	}
	return _u
}

// ClearPriceListCompletedAt clears the value of the "price_list_completed_at" field.
func (_u *ProviderUpdate) ClearPriceListCompletedAt() *ProviderUpdate {
	_u.mutation.ClearPriceListCompletedAt()
	return _u
}

// SetProfileCompletedAt sets the "profile_completed_at" field.
func (_u *ProviderUpdate) SetProfileCompletedAt(v time.Time) *ProviderUpdate {
	_u.mutation.SetProfileCompletedAt(v)
	return _u
}

// SetNillableProfileCompletedAt sets the "profile_completed_at" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableProfileCompletedAt(v *time.Time) *ProviderUpdate {
	if v != nil {
		_u.SetProfileCompletedAt(*v)
	}
	return _u
}

// ClearProfileCompletedAt clears the value of the "profile_completed_at" field.
func (_u *ProviderUpdate) ClearProfileCompletedAt() *ProviderUpdate {
	_u.mutation.ClearProfileCompletedAt()
	return _u
}

// SetStaffCompletedAt sets the "staff_completed_at" field.
func (_u *ProviderUpdate) SetStaffCompletedAt(v time.Time) *ProviderUpdate {
	_u.mutation.SetStaffCompletedAt(v)
	return _u
}

// SetNillableStaffCompletedAt sets the "staff_completed_at" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableStaffCompletedAt(v *time.Time) *ProviderUpdate {
	if v != nil {
		_u.SetStaffCompletedAt(*v)
	}
	return _u
}

// ClearStaffCompletedAt clears the value of the "staff_completed_at" field.
func (_u *ProviderUpdate) ClearStaffCompletedAt() *ProviderUpdate {
	_u.mutation.ClearStaffCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProviderUpdate) SetCreatedAt(v time.Time) *ProviderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableCreatedAt(v *time.Time) *ProviderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderUpdate) SetUpdatedAt(v time.Time) *ProviderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderMutation object of the builder.
func (_u *ProviderUpdate) Mutation() *ProviderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provider.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderUpdate) check() error {
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := provider.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Provider.business_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := provider.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Provider.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provider.Table, provider.Columns, sqlgraph.NewFieldSpec(provider.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(provider.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(provider.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(provider.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(provider.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(provider.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(provider.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(provider.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(provider.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(provider.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PriceListCompletedAt(); ok {
		_spec.SetField(provider.FieldPriceListCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.PriceListCompletedAtCleared() {
		_spec.ClearField(provider.FieldPriceListCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProfileCompletedAt(); ok {
		_spec.SetField(provider.FieldProfileCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCompletedAtCleared() {
		_spec.ClearField(provider.FieldProfileCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StaffCompletedAt(); ok {
		_spec.SetField(provider.FieldStaffCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.StaffCompletedAtCleared() {
		_spec.ClearField(provider.FieldStaffCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(provider.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provider.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderUpdateOne is the builder for updating a single Provider entity.
type ProviderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProviderUpdateOne) SetUserID(v uuid.UUID) *ProviderUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableUserID(v *uuid.UUID) *ProviderUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *ProviderUpdateOne) SetBusinessName(v string) *ProviderUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableBusinessName(v *string) *ProviderUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProviderUpdateOne) SetEmail(v string) *ProviderUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableEmail(v *string) *ProviderUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProviderUpdateOne) SetDescription(v string) *ProviderUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableDescription(v *string) *ProviderUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProviderUpdateOne) ClearDescription() *ProviderUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ProviderUpdateOne) SetLatitude(v float64) *ProviderUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableLatitude(v *float64) *ProviderUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ProviderUpdateOne) AddLatitude(v float64) *ProviderUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ProviderUpdateOne) SetLongitude(v float64) *ProviderUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableLongitude(v *float64) *ProviderUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ProviderUpdateOne) AddLongitude(v float64) *ProviderUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetPriceListCompletedAt sets the "price_list_completed_at" field.
func (_u *ProviderUpdateOne) SetPriceListCompletedAt(v time.Time) *ProviderUpdateOne {
	_u.mutation.SetPriceListCompletedAt(v)
	return _u
}

// SetNillablePriceListCompletedAt sets the "price_list_completed_at" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillablePriceListCompletedAt(v *time.Time) *ProviderUpdateOne {
	if v != nil {
		_u.SetPriceListCompletedAt(*v)
	}
	return _u
}

// ClearPriceListCompletedAt clears the value of the "price_list_completed_at" field.
func (_u *ProviderUpdateOne) ClearPriceListCompletedAt() *ProviderUpdateOne {
	_u.mutation.ClearPriceListCompletedAt()
	return _u
}

// SetProfileCompletedAt sets the "profile_completed_at" field.
func (_u *ProviderUpdateOne) SetProfileCompletedAt(v time.Time) *ProviderUpdateOne {
	_u.mutation.SetProfileCompletedAt(v)
	return _u
}

// SetNillableProfileCompletedAt sets the "profile_completed_at" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableProfileCompletedAt(v *time.Time) *ProviderUpdateOne {
	if v != nil {
		_u.SetProfileCompletedAt(*v)
	}
	return _u
}

// ClearProfileCompletedAt clears the value of the "profile_completed_at" field.
func (_u *ProviderUpdateOne) ClearProfileCompletedAt() *ProviderUpdateOne {
	_u.mutation.ClearProfileCompletedAt()
	return _u
}

// SetStaffCompletedAt sets the "staff_completed_at" field.
func (_u *ProviderUpdateOne) SetStaffCompletedAt(v time.Time) *ProviderUpdateOne {
	_u.mutation.SetStaffCompletedAt(v)
	return _u
}

// SetNillableStaffCompletedAt sets the "staff_completed_at" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableStaffCompletedAt(v *time.Time) *ProviderUpdateOne {
	if v != nil {
		_u.SetStaffCompletedAt(*v)
	}
	return _u
}

// ClearStaffCompletedAt clears the value of the "staff_completed_at" field.
func (_u *ProviderUpdateOne) ClearStaffCompletedAt() *ProviderUpdateOne {
	_u.mutation.ClearStaffCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProviderUpdateOne) SetCreatedAt(v time.Time) *ProviderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableCreatedAt(v *time.Time) *ProviderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderUpdateOne) SetUpdatedAt(v time.Time) *ProviderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderMutation object of the builder.
func (_u *ProviderUpdateOne) Mutation() *ProviderMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderUpdate builder.
func (_u *ProviderUpdateOne) Where(ps ...predicate.Provider) *ProviderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderUpdateOne) Select(field string, fields ...string) *ProviderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Provider entity.
func (_u *ProviderUpdateOne) Save(ctx context.Context) (*Provider, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderUpdateOne) SaveX(ctx context.Context) *Provider {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provider.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderUpdateOne) check() error {
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := provider.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Provider.business_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := provider.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Provider.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderUpdateOne) sqlSave(ctx context.Context) (_node *Provider, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provider.Table, provider.Columns, sqlgraph.NewFieldSpec(provider.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Provider.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, provider.FieldID)
		for _, f := range fields {
			if !provider.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != provider.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(provider.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(provider.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(provider.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(provider.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(provider.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(provider.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(provider.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(provider.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(provider.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PriceListCompletedAt(); ok {
		_spec.SetField(provider.FieldPriceListCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.PriceListCompletedAtCleared() {
		_spec.ClearField(provider.FieldPriceListCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProfileCompletedAt(); ok {
		_spec.SetField(provider.FieldProfileCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCompletedAtCleared() {
		_spec.ClearField(provider.FieldProfileCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StaffCompletedAt(); ok {
		_spec.SetField(provider.FieldStaffCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.StaffCompletedAtCleared() {
		_spec.ClearField(provider.FieldStaffCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(provider.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provider.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Provider{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
