package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/internal/async"
	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/llm"
	"github.com/smilematch/quotes/internal/match"
	"github.com/smilematch/quotes/internal/quote"
)

// generateOffers matches nearby eligible providers against a completed quote
// and creates one counter-offer per provider. Each provider is handled in
// isolation: one failed reconciliation never blocks the others.
func (p *Processor) generateOffers(ctx context.Context, job async.Job) error {
	start := time.Now()

	rec, err := p.quotes.GetByID(ctx, job.QuoteID)
	if err != nil {
		return Permanent(fmt.Errorf("load quote %s: %w", job.QuoteID, err))
	}
	if constants.QuoteStatus(rec.Status) != constants.QuoteCompleted {
		p.logger.Info("pipeline.offers.not_completed", "quote_id", job.QuoteID, "status", rec.Status)
		return nil
	}

	parsed, err := quote.ParsePayload(rec.Payload)
	if err != nil {
		return Permanent(fmt.Errorf("stored payload for %s is invalid: %w", job.QuoteID, err))
	}

	patient, err := p.patients.GetByID(ctx, rec.PatientID)
	if err != nil {
		return Permanent(fmt.Errorf("load patient %s: %w", rec.PatientID, err))
	}

	candidates, err := p.providers.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list providers: %w", err)
	}
	nearby := match.Nearest(patient.Latitude, patient.Longitude, candidates, p.radiusKm, p.maxMatch)
	if len(nearby) == 0 {
		p.logger.Info("pipeline.offers.no_providers", "quote_id", job.QuoteID)
		return nil
	}

	var failed int
	for _, m := range nearby {
		if err := p.offerForProvider(ctx, rec.ID, patient, m.Provider, parsed); err != nil {
			failed++
			p.logger.Error("pipeline.offers.provider_failed",
				"quote_id", job.QuoteID, "provider_id", m.Provider.ID, "distance_km", m.DistanceKm, "error", err)
		}
	}

	p.logger.Info("pipeline.offers.done",
		"quote_id", job.QuoteID,
		"matched", len(nearby),
		"failed", failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if failed == len(nearby) {
		// Nothing succeeded; let the queue retry the whole fan-out. Providers
		// that gain an offer meanwhile are skipped by the idempotency check.
		return fmt.Errorf("all %d provider offers failed for quote %s", failed, job.QuoteID)
	}
	return nil
}

func (p *Processor) offerForProvider(ctx context.Context, quoteID uuid.UUID, patient *entity.Patient, prov *entity.Provider, parsed quote.Payload) error {
	exists, err := p.offers.ExistsForQuoteAndProvider(ctx, quoteID, prov.ID)
	if err != nil {
		return fmt.Errorf("offer existence check: %w", err)
	}
	if exists {
		p.logger.Info("pipeline.offers.already_exists", "quote_id", quoteID, "provider_id", prov.ID)
		return nil
	}

	entries, err := p.prices.Effective(ctx, prov.ID)
	if err != nil {
		return fmt.Errorf("resolve price list: %w", err)
	}
	if len(entries) == 0 {
		p.logger.Warn("pipeline.offers.empty_price_list", "provider_id", prov.ID)
		return nil
	}

	// The offer is persisted even when every line came back unmatched: the
	// patient sees the zero-priced lines and decides for themselves.
	payload, raw, err := p.reconciler.ReconcileOffer(ctx, llm.ReconcileRequest{
		Quote:     parsed,
		PriceList: entries,
	})
	if err != nil {
		return fmt.Errorf("reconcile offer: %w", err)
	}

	if _, err := p.offers.Create(ctx, quoteID, prov.ID, raw); err != nil {
		return fmt.Errorf("persist offer: %w", err)
	}
	p.logger.Info("pipeline.offers.created",
		"quote_id", quoteID, "provider_id", prov.ID, "lines", len(payload.Lines), "total", payload.Total)

	p.notifier.OfferReceived(ctx, patient, prov.BusinessName)
	p.notifier.OfferSentToProvider(ctx, prov)
	return nil
}
