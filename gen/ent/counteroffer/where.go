// Code generated by ent, DO NOT EDIT.

package counteroffer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/smilematch/quotes/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLTE(FieldID, id))
}

// QuoteID applies equality check predicate on the "quote_id" field. It's identical to QuoteIDEQ.
func QuoteID(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldQuoteID, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldProviderID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldUpdatedAt, v))
}

// QuoteIDEQ applies the EQ predicate on the "quote_id" field.
func QuoteIDEQ(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldQuoteID, v))
}

// QuoteIDNEQ applies the NEQ predicate on the "quote_id" field.
func QuoteIDNEQ(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNEQ(FieldQuoteID, v))
}

// QuoteIDIn applies the In predicate on the "quote_id" field.
func QuoteIDIn(vs ...uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldIn(FieldQuoteID, vs...))
}

// QuoteIDNotIn applies the NotIn predicate on the "quote_id" field.
func QuoteIDNotIn(vs ...uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNotIn(FieldQuoteID, vs...))
}

// QuoteIDGT applies the GT predicate on the "quote_id" field.
func QuoteIDGT(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGT(FieldQuoteID, v))
}

// QuoteIDGTE applies the GTE predicate on the "quote_id" field.
func QuoteIDGTE(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGTE(FieldQuoteID, v))
}

// QuoteIDLT applies the LT predicate on the "quote_id" field.
func QuoteIDLT(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLT(FieldQuoteID, v))
}

// QuoteIDLTE applies the LTE predicate on the "quote_id" field.
func QuoteIDLTE(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLTE(FieldQuoteID, v))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNotIn(FieldProviderID, vs...))
}

// ProviderIDGT applies the GT predicate on the "provider_id" field.
func ProviderIDGT(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGT(FieldProviderID, v))
}

// ProviderIDGTE applies the GTE predicate on the "provider_id" field.
func ProviderIDGTE(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGTE(FieldProviderID, v))
}

// ProviderIDLT applies the LT predicate on the "provider_id" field.
func ProviderIDLT(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLT(FieldProviderID, v))
}

// ProviderIDLTE applies the LTE predicate on the "provider_id" field.
func ProviderIDLTE(v uuid.UUID) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLTE(FieldProviderID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CounterOffer {
	return predicate.CounterOffer(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CounterOffer) predicate.CounterOffer {
	return predicate.CounterOffer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CounterOffer) predicate.CounterOffer {
	return predicate.CounterOffer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CounterOffer) predicate.CounterOffer {
	return predicate.CounterOffer(sql.NotPredicates(p))
}
