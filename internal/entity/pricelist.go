package entity

import "github.com/google/uuid"

// CatalogItem is one entry of the shared, provider-independent base price list.
type CatalogItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// ProviderOverride is a provider's customization of one catalog item.
// A nil price means the provider has not priced the item yet.
type ProviderOverride struct {
	CatalogItemID int      `json:"catalog_item_id"`
	Price         *float64 `json:"price,omitempty"`
	Active        bool     `json:"active"`
}

// CustomItem is a freeform price-list entry owned by one provider.
type CustomItem struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
}

// PriceEntry is one line of a provider's resolved effective price list.
type PriceEntry struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
