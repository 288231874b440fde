// Package eligibility decides whether a provider is matchable and keeps the
// three completion timestamps in sync with the underlying data.
package eligibility

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/repository"
)

// Thresholds a provider must clear before it is matchable.
const (
	MinPricedEntries = 3
	MinPhotos        = 3
	MinStaff         = 1
)

// Completion is the target state computed from facts.
type Completion struct {
	PriceList bool
	Profile   bool
	Staff     bool
}

// Evaluate derives the target completion state from raw counts. It is the only
// place the thresholds live.
func Evaluate(f *entity.ProviderFacts) Completion {
	return Completion{
		PriceList: f.ActivePricedOverrides >= MinPricedEntries,
		Profile:   f.HasDescription && f.PhotoCount >= MinPhotos,
		Staff:     f.StaffCount >= MinStaff,
	}
}

// Reconciler recomputes a provider's completion timestamps after any edit to
// price list, profile, or staff data. Timestamps change only on edges: a
// marker already in the target state is left alone, so the original
// completion time survives repeated reconciliation.
type Reconciler struct {
	providers repository.ProviderRepository
	logger    *slog.Logger
}

func NewReconciler(providers repository.ProviderRepository, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{providers: providers, logger: logger}
}

// Reconcile loads the provider's facts and stamps or clears each completion
// timestamp whose state changed.
func (r *Reconciler) Reconcile(ctx context.Context, providerID uuid.UUID) (Completion, error) {
	facts, err := r.providers.Facts(ctx, providerID)
	if err != nil {
		return Completion{}, fmt.Errorf("load provider facts: %w", err)
	}
	target := Evaluate(facts)

	type marker struct {
		field repository.CompletionField
		have  bool
		want  bool
	}
	markers := []marker{
		{repository.CompletionPriceList, facts.PriceListCompletedAt != nil, target.PriceList},
		{repository.CompletionProfile, facts.ProfileCompletedAt != nil, target.Profile},
		{repository.CompletionStaff, facts.StaffCompletedAt != nil, target.Staff},
	}
	for _, m := range markers {
		if m.have == m.want {
			continue
		}
		if err := r.providers.SetCompletion(ctx, providerID, m.field, m.want); err != nil {
			return target, fmt.Errorf("set completion %s: %w", m.field, err)
		}
		r.logger.Info("eligibility.marker_changed",
			"provider_id", providerID,
			"field", m.field,
			"done", m.want,
		)
	}
	return target, nil
}
