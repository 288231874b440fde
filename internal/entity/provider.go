package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is a dentist practice that can be matched against patient quotes.
type Provider struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	BusinessName string    `json:"business_name"`
	Email        string    `json:"email"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`

	// Eligibility markers: all three must be set for the provider to be matchable.
	PriceListCompletedAt *time.Time `json:"price_list_completed_at,omitempty"`
	ProfileCompletedAt   *time.Time `json:"profile_completed_at,omitempty"`
	StaffCompletedAt     *time.Time `json:"staff_completed_at,omitempty"`
}

// Eligible reports whether all three completion markers are set.
func (p *Provider) Eligible() bool {
	return p.PriceListCompletedAt != nil && p.ProfileCompletedAt != nil && p.StaffCompletedAt != nil
}

// ProviderFacts carries the current counts the eligibility reconciliation derives
// the completion timestamps from.
type ProviderFacts struct {
	HasDescription bool
	PhotoCount     int
	StaffCount     int

	// ActivePricedOverrides counts activated catalog overrides with a set
	// price. Custom items are excluded: they never count toward completion.
	ActivePricedOverrides int

	PriceListCompletedAt *time.Time
	ProfileCompletedAt   *time.Time
	StaffCompletedAt     *time.Time
}
