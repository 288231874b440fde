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
	"github.com/smilematch/quotes/gen/ent/predicate"
	"github.com/smilematch/quotes/gen/ent/quoterecord"
)

// QuoteRecordUpdate is the builder for updating QuoteRecord entities.
type QuoteRecordUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteRecordMutation
}

// Where appends a list predicates to the QuoteRecordUpdate builder.
func (_u *QuoteRecordUpdate) Where(ps ...predicate.QuoteRecord) *QuoteRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *QuoteRecordUpdate) SetPatientID(v uuid.UUID) *QuoteRecordUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *QuoteRecordUpdate) SetNillablePatientID(v *uuid.UUID) *QuoteRecordUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *QuoteRecordUpdate) SetFilePath(v string) *QuoteRecordUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *QuoteRecordUpdate) SetNillableFilePath(v *string) *QuoteRecordUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *QuoteRecordUpdate) SetOriginalFilename(v string) *QuoteRecordUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *QuoteRecordUpdate) SetNillableOriginalFilename(v *string) *QuoteRecordUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuoteRecordUpdate) SetStatus(v string) *QuoteRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuoteRecordUpdate) SetNillableStatus(v *string) *QuoteRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QuoteRecordUpdate) SetPayload(v json.RawMessage) *QuoteRecordUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *QuoteRecordUpdate) AppendPayload(v json.RawMessage) *QuoteRecordUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QuoteRecordUpdate) ClearPayload() *QuoteRecordUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QuoteRecordUpdate) SetErrorMessage(v string) *QuoteRecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QuoteRecordUpdate) SetNillableErrorMessage(v *string) *QuoteRecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QuoteRecordUpdate) ClearErrorMessage() *QuoteRecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuoteRecordUpdate) SetCreatedAt(v time.Time) *QuoteRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuoteRecordUpdate) SetNillableCreatedAt(v *time.Time) *QuoteRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuoteRecordUpdate) SetUpdatedAt(v time.Time) *QuoteRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuoteRecordMutation object of the builder.
func (_u *QuoteRecordUpdate) Mutation() *QuoteRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuoteRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quoterecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteRecordUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := quoterecord.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "QuoteRecord.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := quoterecord.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "QuoteRecord.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := quoterecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuoteRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuoteRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quoterecord.Table, quoterecord.Columns, sqlgraph.NewFieldSpec(quoterecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(quoterecord.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(quoterecord.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(quoterecord.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quoterecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(quoterecord.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quoterecord.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(quoterecord.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(quoterecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(quoterecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quoterecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quoterecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quoterecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteRecordUpdateOne is the builder for updating a single QuoteRecord entity.
type QuoteRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteRecordMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *QuoteRecordUpdateOne) SetPatientID(v uuid.UUID) *QuoteRecordUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *QuoteRecordUpdateOne) SetNillablePatientID(v *uuid.UUID) *QuoteRecordUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *QuoteRecordUpdateOne) SetFilePath(v string) *QuoteRecordUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *QuoteRecordUpdateOne) SetNillableFilePath(v *string) *QuoteRecordUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *QuoteRecordUpdateOne) SetOriginalFilename(v string) *QuoteRecordUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *QuoteRecordUpdateOne) SetNillableOriginalFilename(v *string) *QuoteRecordUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuoteRecordUpdateOne) SetStatus(v string) *QuoteRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuoteRecordUpdateOne) SetNillableStatus(v *string) *QuoteRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QuoteRecordUpdateOne) SetPayload(v json.RawMessage) *QuoteRecordUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *QuoteRecordUpdateOne) AppendPayload(v json.RawMessage) *QuoteRecordUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QuoteRecordUpdateOne) ClearPayload() *QuoteRecordUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QuoteRecordUpdateOne) SetErrorMessage(v string) *QuoteRecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QuoteRecordUpdateOne) SetNillableErrorMessage(v *string) *QuoteRecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QuoteRecordUpdateOne) ClearErrorMessage() *QuoteRecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuoteRecordUpdateOne) SetCreatedAt(v time.Time) *QuoteRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuoteRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *QuoteRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuoteRecordUpdateOne) SetUpdatedAt(v time.Time) *QuoteRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuoteRecordMutation object of the builder.
func (_u *QuoteRecordUpdateOne) Mutation() *QuoteRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuoteRecordUpdate builder.
func (_u *QuoteRecordUpdateOne) Where(ps ...predicate.QuoteRecord) *QuoteRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteRecordUpdateOne) Select(field string, fields ...string) *QuoteRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuoteRecord entity.
func (_u *QuoteRecordUpdateOne) Save(ctx context.Context) (*QuoteRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteRecordUpdateOne) SaveX(ctx context.Context) *QuoteRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuoteRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quoterecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteRecordUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := quoterecord.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "QuoteRecord.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := quoterecord.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "QuoteRecord.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := quoterecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuoteRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuoteRecordUpdateOne) sqlSave(ctx context.Context) (_node *QuoteRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quoterecord.Table, quoterecord.Columns, sqlgraph.NewFieldSpec(quoterecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuoteRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quoterecord.FieldID)
		for _, f := range fields {
			if !quoterecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quoterecord.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(quoterecord.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(quoterecord.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(quoterecord.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quoterecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(quoterecord.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quoterecord.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(quoterecord.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(quoterecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(quoterecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quoterecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quoterecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QuoteRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quoterecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
