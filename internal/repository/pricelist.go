package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/gen/ent"
	"github.com/smilematch/quotes/gen/ent/catalogitem"
	"github.com/smilematch/quotes/gen/ent/customitem"
	"github.com/smilematch/quotes/gen/ent/provideroverride"
	"github.com/smilematch/quotes/internal/entity"
)

// PriceListRepository reads and edits the pieces an effective price list is
// computed from: the shared catalog, per-provider overrides, and per-provider
// custom entries.
type PriceListRepository interface {
	ActiveCatalog(ctx context.Context) ([]*entity.CatalogItem, error)
	OverridesByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.ProviderOverride, error)
	CustomItemsByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.CustomItem, error)

	// UpsertOverride sets the provider's price and activation flag for one
	// catalog item, creating the override row if it does not exist yet.
	UpsertOverride(ctx context.Context, providerID uuid.UUID, catalogItemID int, price *float64, active bool) error

	AddCustomItem(ctx context.Context, providerID uuid.UUID, name, description string, price float64) (*entity.CustomItem, error)
	GetCustomItem(ctx context.Context, id uuid.UUID) (*entity.CustomItem, error)
	UpdateCustomItem(ctx context.Context, id uuid.UUID, name, description string, price float64) error
	DeleteCustomItem(ctx context.Context, id uuid.UUID) error
}

type priceListRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPriceListRepository(client *ent.Client, logger *slog.Logger) PriceListRepository {
	return &priceListRepo{client: client, logger: logger}
}

func (r *priceListRepo) ActiveCatalog(ctx context.Context) ([]*entity.CatalogItem, error) {
	rows, err := r.client.CatalogItem.Query().
		Where(catalogitem.Active(true)).
		Order(ent.Asc(catalogitem.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.CatalogItem, len(rows))
	for i, row := range rows {
		out[i] = &entity.CatalogItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: derefString(row.Description),
			Active:      row.Active,
		}
	}
	return out, nil
}

func (r *priceListRepo) OverridesByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.ProviderOverride, error) {
	rows, err := r.client.ProviderOverride.Query().
		Where(provideroverride.ProviderID(providerID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ProviderOverride, len(rows))
	for i, row := range rows {
		out[i] = &entity.ProviderOverride{
			CatalogItemID: row.CatalogItemID,
			Price:         row.Price,
			Active:        row.Active,
		}
	}
	return out, nil
}

func (r *priceListRepo) CustomItemsByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.CustomItem, error) {
	rows, err := r.client.CustomItem.Query().
		Where(customitem.ProviderID(providerID)).
		Order(ent.Asc(customitem.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.CustomItem, len(rows))
	for i, row := range rows {
		out[i] = toCustomItem(row)
	}
	return out, nil
}

func (r *priceListRepo) UpsertOverride(ctx context.Context, providerID uuid.UUID, catalogItemID int, price *float64, active bool) error {
	existing, err := r.client.ProviderOverride.Query().
		Where(
			provideroverride.ProviderID(providerID),
			provideroverride.CatalogItemID(catalogItemID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		create := r.client.ProviderOverride.Create().
			SetProviderID(providerID).
			SetCatalogItemID(catalogItemID).
			SetActive(active)
		if price != nil {
			create.SetPrice(*price)
		}
		if err := create.Exec(ctx); err != nil {
			r.logger.Error("override create failed", "provider_id", providerID, "catalog_item_id", catalogItemID, "error", err)
			return err
		}
		return nil
	}
	if err != nil {
		return err
	}

	upd := existing.Update().SetActive(active)
	if price != nil {
		upd.SetPrice(*price)
	} else {
		upd.ClearPrice()
	}
	if err := upd.Exec(ctx); err != nil {
		r.logger.Error("override update failed", "provider_id", providerID, "catalog_item_id", catalogItemID, "error", err)
		return err
	}
	return nil
}

func (r *priceListRepo) AddCustomItem(ctx context.Context, providerID uuid.UUID, name, description string, price float64) (*entity.CustomItem, error) {
	create := r.client.CustomItem.Create().
		SetProviderID(providerID).
		SetName(name).
		SetPrice(price)
	if description != "" {
		create.SetDescription(description)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("custom item create failed", "provider_id", providerID, "error", err)
		return nil, err
	}
	return toCustomItem(row), nil
}

func (r *priceListRepo) GetCustomItem(ctx context.Context, id uuid.UUID) (*entity.CustomItem, error) {
	row, err := r.client.CustomItem.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomItem(row), nil
}

func (r *priceListRepo) UpdateCustomItem(ctx context.Context, id uuid.UUID, name, description string, price float64) error {
	upd := r.client.CustomItem.UpdateOneID(id).
		SetName(name).
		SetPrice(price)
	if description != "" {
		upd.SetDescription(description)
	} else {
		upd.ClearDescription()
	}
	return upd.Exec(ctx)
}

func (r *priceListRepo) DeleteCustomItem(ctx context.Context, id uuid.UUID) error {
	return r.client.CustomItem.DeleteOneID(id).Exec(ctx)
}
