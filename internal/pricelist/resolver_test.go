package pricelist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smilematch/quotes/internal/entity"
)

func ptr(f float64) *float64 { return &f }

func TestMergeOverridePriceWins(t *testing.T) {
	catalog := []*entity.CatalogItem{
		{ID: 1, Name: "Cleaning", Active: true},
	}
	overrides := []*entity.ProviderOverride{
		{CatalogItemID: 1, Price: ptr(80), Active: true},
	}

	got := Merge(catalog, overrides, nil)

	assert.Equal(t, []entity.PriceEntry{{Name: "Cleaning", Price: 80}}, got)
}

func TestMergeSkipsUnactivatedAndUnpriced(t *testing.T) {
	catalog := []*entity.CatalogItem{
		{ID: 1, Name: "Cleaning", Active: true},
		{ID: 2, Name: "Whitening", Active: true},
		{ID: 3, Name: "Implant", Active: true},
	}
	overrides := []*entity.ProviderOverride{
		{CatalogItemID: 1, Price: ptr(80), Active: true},
		{CatalogItemID: 2, Price: nil, Active: true},    // active but unpriced
		{CatalogItemID: 3, Price: ptr(900), Active: false}, // priced but inactive
	}

	got := Merge(catalog, overrides, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, "Cleaning", got[0].Name)
}

func TestMergeSkipsInactiveCatalogItems(t *testing.T) {
	catalog := []*entity.CatalogItem{
		{ID: 1, Name: "Retired treatment", Active: false},
	}
	overrides := []*entity.ProviderOverride{
		{CatalogItemID: 1, Price: ptr(50), Active: true},
	}

	assert.Empty(t, Merge(catalog, overrides, nil))
}

func TestMergeAppendsCustomItemsWithoutDedup(t *testing.T) {
	catalog := []*entity.CatalogItem{
		{ID: 1, Name: "Cleaning", Active: true},
	}
	overrides := []*entity.ProviderOverride{
		{CatalogItemID: 1, Price: ptr(80), Active: true},
	}
	custom := []*entity.CustomItem{
		{Name: "Cleaning", Price: 60}, // duplicates a catalog name on purpose
		{Name: "Laser therapy", Price: 120},
	}

	got := Merge(catalog, overrides, custom)

	assert.Equal(t, []entity.PriceEntry{
		{Name: "Cleaning", Price: 80},
		{Name: "Cleaning", Price: 60},
		{Name: "Laser therapy", Price: 120},
	}, got)
}

func TestMergeEmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil, nil))
}

// MockPriceListRepository is a mock implementation of repository.PriceListRepository
// reduced to the read methods the resolver uses.
type MockPriceListRepository struct {
	mock.Mock
}

func (m *MockPriceListRepository) ActiveCatalog(ctx context.Context) ([]*entity.CatalogItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.CatalogItem), args.Error(1)
}

func (m *MockPriceListRepository) OverridesByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.ProviderOverride, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]*entity.ProviderOverride), args.Error(1)
}

func (m *MockPriceListRepository) CustomItemsByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.CustomItem, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]*entity.CustomItem), args.Error(1)
}

func (m *MockPriceListRepository) UpsertOverride(ctx context.Context, providerID uuid.UUID, catalogItemID int, price *float64, active bool) error {
	args := m.Called(ctx, providerID, catalogItemID, price, active)
	return args.Error(0)
}

func (m *MockPriceListRepository) AddCustomItem(ctx context.Context, providerID uuid.UUID, name, description string, price float64) (*entity.CustomItem, error) {
	args := m.Called(ctx, providerID, name, description, price)
	return args.Get(0).(*entity.CustomItem), args.Error(1)
}

func (m *MockPriceListRepository) GetCustomItem(ctx context.Context, id uuid.UUID) (*entity.CustomItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entity.CustomItem), args.Error(1)
}

func (m *MockPriceListRepository) UpdateCustomItem(ctx context.Context, id uuid.UUID, name, description string, price float64) error {
	args := m.Called(ctx, id, name, description, price)
	return args.Error(0)
}

func (m *MockPriceListRepository) DeleteCustomItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestEffectiveComposesRepositoryReads(t *testing.T) {
	providerID := uuid.New()
	repo := new(MockPriceListRepository)
	repo.On("ActiveCatalog", mock.Anything).Return([]*entity.CatalogItem{
		{ID: 1, Name: "Cleaning", Active: true},
	}, nil)
	repo.On("OverridesByProvider", mock.Anything, providerID).Return([]*entity.ProviderOverride{
		{CatalogItemID: 1, Price: ptr(75), Active: true},
	}, nil)
	repo.On("CustomItemsByProvider", mock.Anything, providerID).Return([]*entity.CustomItem{
		{Name: "Night guard", Price: 200},
	}, nil)

	r := NewResolver(repo, nil)
	got, err := r.Effective(context.Background(), providerID)

	assert.NoError(t, err)
	assert.Equal(t, []entity.PriceEntry{
		{Name: "Cleaning", Price: 75},
		{Name: "Night guard", Price: 200},
	}, got)
	repo.AssertExpectations(t)
}
