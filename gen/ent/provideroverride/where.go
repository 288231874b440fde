// Code generated by ent, DO NOT EDIT.

package provideroverride

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/smilematch/quotes/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLTE(FieldID, id))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldProviderID, v))
}

// CatalogItemID applies equality check predicate on the "catalog_item_id" field. It's identical to CatalogItemIDEQ.
func CatalogItemID(v int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldCatalogItemID, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldPrice, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNotIn(FieldProviderID, vs...))
}

// ProviderIDGT applies the GT predicate on the "provider_id" field.
func ProviderIDGT(v uuid.UUID) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGT(FieldProviderID, v))
}

// ProviderIDGTE applies the GTE predicate on the "provider_id" field.
func ProviderIDGTE(v uuid.UUID) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGTE(FieldProviderID, v))
}

// ProviderIDLT applies the LT predicate on the "provider_id" field.
func ProviderIDLT(v uuid.UUID) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLT(FieldProviderID, v))
}

// ProviderIDLTE applies the LTE predicate on the "provider_id" field.
func ProviderIDLTE(v uuid.UUID) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLTE(FieldProviderID, v))
}

// CatalogItemIDEQ applies the EQ predicate on the "catalog_item_id" field.
func CatalogItemIDEQ(v int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldCatalogItemID, v))
}

// CatalogItemIDNEQ applies the NEQ predicate on the "catalog_item_id" field.
func CatalogItemIDNEQ(v int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNEQ(FieldCatalogItemID, v))
}

// CatalogItemIDIn applies the In predicate on the "catalog_item_id" field.
func CatalogItemIDIn(vs ...int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldIn(FieldCatalogItemID, vs...))
}

// CatalogItemIDNotIn applies the NotIn predicate on the "catalog_item_id" field.
func CatalogItemIDNotIn(vs ...int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNotIn(FieldCatalogItemID, vs...))
}

// CatalogItemIDGT applies the GT predicate on the "catalog_item_id" field.
func CatalogItemIDGT(v int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGT(FieldCatalogItemID, v))
}

// CatalogItemIDGTE applies the GTE predicate on the "catalog_item_id" field.
func CatalogItemIDGTE(v int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGTE(FieldCatalogItemID, v))
}

// CatalogItemIDLT applies the LT predicate on the "catalog_item_id" field.
func CatalogItemIDLT(v int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLT(FieldCatalogItemID, v))
}

// CatalogItemIDLTE applies the LTE predicate on the "catalog_item_id" field.
func CatalogItemIDLTE(v int) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLTE(FieldCatalogItemID, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLTE(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNotNull(FieldPrice))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderOverride) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderOverride) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderOverride) predicate.ProviderOverride {
	return predicate.ProviderOverride(sql.NotPredicates(p))
}
