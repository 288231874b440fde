package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	quotesv1 "github.com/smilematch/quotes/gen/proto/quotes/v1"
	"github.com/smilematch/quotes/internal/common"
	"github.com/smilematch/quotes/internal/eligibility"
	"github.com/smilematch/quotes/internal/pricelist"
	"github.com/smilematch/quotes/internal/repository"
)

type PriceListService struct {
	quotesv1.UnimplementedPriceListServiceServer

	prices     repository.PriceListRepository
	providers  repository.ProviderRepository
	resolver   *pricelist.Resolver
	reconciler *eligibility.Reconciler

	logger *slog.Logger
}

func NewPriceListService(
	prices repository.PriceListRepository,
	providers repository.ProviderRepository,
	resolver *pricelist.Resolver,
	reconciler *eligibility.Reconciler,
	logger *slog.Logger,
) *PriceListService {
	return &PriceListService{
		prices:     prices,
		providers:  providers,
		resolver:   resolver,
		reconciler: reconciler,
		logger:     logger,
	}
}

// GetEffectivePriceList implements quotesv1.PriceListServiceServer
func (s *PriceListService) GetEffectivePriceList(ctx context.Context, req *quotesv1.GetEffectivePriceListRequest) (*quotesv1.GetEffectivePriceListResponse, error) {
	providerID, err := parseID(req.GetProviderId(), "provider_id")
	if err != nil {
		return nil, err
	}
	entries, err := s.resolver.Effective(ctx, providerID)
	if err != nil {
		return nil, common.InternalError("resolve price list failed")
	}
	out := make([]*quotesv1.PriceEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &quotesv1.PriceEntry{Name: e.Name, Price: e.Price})
	}
	return &quotesv1.GetEffectivePriceListResponse{Entries: out}, nil
}

// SetOverride implements quotesv1.PriceListServiceServer
func (s *PriceListService) SetOverride(ctx context.Context, req *quotesv1.SetOverrideRequest) (*quotesv1.SetOverrideResponse, error) {
	providerID, err := parseID(req.GetProviderId(), "provider_id")
	if err != nil {
		return nil, err
	}
	if req.GetCatalogItemId() <= 0 {
		return nil, common.InvalidArgumentError("catalog_item_id is required")
	}
	var price *float64
	if req.Price != nil {
		p := req.GetPrice()
		if p < 0 {
			return nil, common.InvalidArgumentError("price must not be negative")
		}
		price = &p
	}

	if err := s.prices.UpsertOverride(ctx, providerID, int(req.GetCatalogItemId()), price, req.GetActive()); err != nil {
		return nil, common.InternalError("save override failed")
	}

	completion, err := s.reconcile(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return &quotesv1.SetOverrideResponse{PriceListComplete: completion.PriceList}, nil
}

// AddCustomItem implements quotesv1.PriceListServiceServer
func (s *PriceListService) AddCustomItem(ctx context.Context, req *quotesv1.AddCustomItemRequest) (*quotesv1.AddCustomItemResponse, error) {
	providerID, err := parseID(req.GetProviderId(), "provider_id")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if req.GetPrice() < 0 {
		return nil, common.InvalidArgumentError("price must not be negative")
	}

	item, err := s.prices.AddCustomItem(ctx, providerID, name, strings.TrimSpace(req.GetDescription()), req.GetPrice())
	if err != nil {
		return nil, common.InternalError("add custom item failed")
	}

	completion, err := s.reconcile(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return &quotesv1.AddCustomItemResponse{
		ItemId:            item.ID.String(),
		PriceListComplete: completion.PriceList,
	}, nil
}

// UpdateCustomItem implements quotesv1.PriceListServiceServer
func (s *PriceListService) UpdateCustomItem(ctx context.Context, req *quotesv1.UpdateCustomItemRequest) (*quotesv1.UpdateCustomItemResponse, error) {
	providerID, err := parseID(req.GetProviderId(), "provider_id")
	if err != nil {
		return nil, err
	}
	itemID, err := parseID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if req.GetPrice() < 0 {
		return nil, common.InvalidArgumentError("price must not be negative")
	}

	if _, err := s.ownedItem(ctx, providerID, itemID); err != nil {
		return nil, err
	}
	if err := s.prices.UpdateCustomItem(ctx, itemID, name, strings.TrimSpace(req.GetDescription()), req.GetPrice()); err != nil {
		return nil, common.InternalError("update custom item failed")
	}

	completion, err := s.reconcile(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return &quotesv1.UpdateCustomItemResponse{PriceListComplete: completion.PriceList}, nil
}

// DeleteCustomItem implements quotesv1.PriceListServiceServer
func (s *PriceListService) DeleteCustomItem(ctx context.Context, req *quotesv1.DeleteCustomItemRequest) (*quotesv1.DeleteCustomItemResponse, error) {
	providerID, err := parseID(req.GetProviderId(), "provider_id")
	if err != nil {
		return nil, err
	}
	itemID, err := parseID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedItem(ctx, providerID, itemID); err != nil {
		return nil, err
	}
	if err := s.prices.DeleteCustomItem(ctx, itemID); err != nil {
		return nil, common.InternalError("delete custom item failed")
	}

	completion, err := s.reconcile(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return &quotesv1.DeleteCustomItemResponse{PriceListComplete: completion.PriceList}, nil
}

// RecomputeEligibility implements quotesv1.PriceListServiceServer. Profile
// photo and staff roster mutations happen outside this service; their owners
// call this after every change.
func (s *PriceListService) RecomputeEligibility(ctx context.Context, req *quotesv1.RecomputeEligibilityRequest) (*quotesv1.RecomputeEligibilityResponse, error) {
	providerID, err := parseID(req.GetProviderId(), "provider_id")
	if err != nil {
		return nil, err
	}
	completion, err := s.reconcile(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return &quotesv1.RecomputeEligibilityResponse{
		PriceListComplete: completion.PriceList,
		ProfileComplete:   completion.Profile,
		StaffComplete:     completion.Staff,
	}, nil
}

func (s *PriceListService) ownedItem(ctx context.Context, providerID, itemID uuid.UUID) (bool, error) {
	item, err := s.prices.GetCustomItem(ctx, itemID)
	if err != nil {
		return false, common.NotFoundError("custom item not found")
	}
	if item.ProviderID != providerID {
		s.logger.Warn("custom item access denied", "item_id", itemID, "provider_id", providerID)
		return false, common.PermissionDeniedError("custom item belongs to another provider")
	}
	return true, nil
}

func (s *PriceListService) reconcile(ctx context.Context, providerID uuid.UUID) (eligibility.Completion, error) {
	completion, err := s.reconciler.Reconcile(ctx, providerID)
	if err != nil {
		s.logger.Error("eligibility reconcile failed", "provider_id", providerID, "error", err)
		return eligibility.Completion{}, common.InternalError("eligibility update failed")
	}
	return completion, nil
}
