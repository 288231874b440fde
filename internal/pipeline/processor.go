// Package pipeline runs the asynchronous quote lifecycle: claim, extract,
// structure, persist, then match providers and fan out counter-offers.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/smilematch/quotes/internal/async"
	"github.com/smilematch/quotes/internal/blob"
	"github.com/smilematch/quotes/internal/extract"
	"github.com/smilematch/quotes/internal/llm"
	"github.com/smilematch/quotes/internal/notify"
	"github.com/smilematch/quotes/internal/pricelist"
	"github.com/smilematch/quotes/internal/repository"
)

// TextExtractor abstracts document text extraction so tests can stub it.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (extract.Result, error)
}

// Processor implements async.Handler for both job kinds.
type Processor struct {
	quotes    repository.QuoteRepository
	offers    repository.OfferRepository
	providers repository.ProviderRepository
	patients  repository.PatientRepository

	store      blob.Store
	extractor  TextExtractor
	structurer llm.QuoteStructurer
	reconciler llm.OfferReconciler
	prices     *pricelist.Resolver
	notifier   *notify.Service

	radiusKm float64
	maxMatch int

	logger *slog.Logger
}

type Deps struct {
	Quotes    repository.QuoteRepository
	Offers    repository.OfferRepository
	Providers repository.ProviderRepository
	Patients  repository.PatientRepository

	Store      blob.Store
	Extractor  TextExtractor
	Structurer llm.QuoteStructurer
	Reconciler llm.OfferReconciler
	Prices     *pricelist.Resolver
	Notifier   *notify.Service

	RadiusKm float64
	MaxMatch int
}

func NewProcessor(deps Deps, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		quotes:     deps.Quotes,
		offers:     deps.Offers,
		providers:  deps.Providers,
		patients:   deps.Patients,
		store:      deps.Store,
		extractor:  deps.Extractor,
		structurer: deps.Structurer,
		reconciler: deps.Reconciler,
		prices:     deps.Prices,
		notifier:   deps.Notifier,
		radiusKm:   deps.RadiusKm,
		maxMatch:   deps.MaxMatch,
		logger:     logger,
	}
}

// Handle dispatches one job attempt.
func (p *Processor) Handle(ctx context.Context, job async.Job, attempt int) error {
	switch job.Kind {
	case async.KindProcess:
		return p.processQuote(ctx, job, attempt)
	case async.KindOffers:
		return p.generateOffers(ctx, job)
	default:
		return Permanent(fmt.Errorf("unknown job kind %q", job.Kind))
	}
}

// Abandon runs after the last failed attempt.
func (p *Processor) Abandon(ctx context.Context, job async.Job, err error) {
	if err == nil {
		return
	}
	switch job.Kind {
	case async.KindProcess:
		// Surface the failure to the patient via the record itself.
		if mErr := p.quotes.MarkError(ctx, job.QuoteID, userFacingMessage(err)); mErr != nil {
			p.logger.Error("pipeline.abandon.mark_error_failed", "quote_id", job.QuoteID, "error", mErr)
		}
	case async.KindOffers:
		// The quote stays completed; offers that did get created stand.
		p.logger.Error("pipeline.abandon.offers", "quote_id", job.QuoteID, "error", err)
	}
}
