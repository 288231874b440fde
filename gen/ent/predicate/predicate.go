// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CatalogItem is the predicate function for catalogitem builders.
type CatalogItem func(*sql.Selector)

// CounterOffer is the predicate function for counteroffer builders.
type CounterOffer func(*sql.Selector)

// CustomItem is the predicate function for customitem builders.
type CustomItem func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Provider is the predicate function for provider builders.
type Provider func(*sql.Selector)

// ProviderOverride is the predicate function for provideroverride builders.
type ProviderOverride func(*sql.Selector)

// QuoteRecord is the predicate function for quoterecord builders.
type QuoteRecord func(*sql.Selector)

// StaffMember is the predicate function for staffmember builders.
type StaffMember func(*sql.Selector)

// StudioPhoto is the predicate function for studiophoto builders.
type StudioPhoto func(*sql.Selector)
