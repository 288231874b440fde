package pricelist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/repository"
)

// Resolver computes a provider's effective price list on demand.
// The result is never persisted.
type Resolver struct {
	repo   repository.PriceListRepository
	logger *slog.Logger
}

func NewResolver(repo repository.PriceListRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{repo: repo, logger: logger}
}

// Effective resolves the provider's current price list: catalog entries the
// provider has activated and priced, plus all custom entries.
func (r *Resolver) Effective(ctx context.Context, providerID uuid.UUID) ([]entity.PriceEntry, error) {
	catalog, err := r.repo.ActiveCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	overrides, err := r.repo.OverridesByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}
	custom, err := r.repo.CustomItemsByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("load custom items: %w", err)
	}

	entries := Merge(catalog, overrides, custom)
	r.logger.Debug("pricelist.resolved",
		"provider_id", providerID,
		"catalog", len(catalog),
		"entries", len(entries),
	)
	return entries, nil
}

// Merge applies provider overrides to the active catalog and appends custom
// entries. A catalog item appears only when the provider has an active
// override with a non-nil price; the override price replaces the catalog
// price. Custom entries are appended unconditionally, duplicates included —
// a duplicated name is the provider's intent, not an error.
func Merge(catalog []*entity.CatalogItem, overrides []*entity.ProviderOverride, custom []*entity.CustomItem) []entity.PriceEntry {
	byItem := make(map[int]*entity.ProviderOverride, len(overrides))
	for _, o := range overrides {
		if o.Active && o.Price != nil {
			byItem[o.CatalogItemID] = o
		}
	}

	entries := make([]entity.PriceEntry, 0, len(byItem)+len(custom))
	for _, item := range catalog {
		if !item.Active {
			continue
		}
		if o, ok := byItem[item.ID]; ok {
			entries = append(entries, entity.PriceEntry{Name: item.Name, Price: *o.Price})
		}
	}
	for _, c := range custom {
		entries = append(entries, entity.PriceEntry{Name: c.Name, Price: c.Price})
	}
	return entries
}
