// Package llm defines the model-backed operations the pipeline depends on.
package llm

import (
	"context"
	"errors"

	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/quote"
)

// ErrMalformedResponse marks a model reply that failed schema validation or
// decoding. Retrying with the same input may still succeed.
var ErrMalformedResponse = errors.New("malformed model response")

// StructureRequest carries the extracted document text into structuring.
type StructureRequest struct {
	Text string

	// PDFSource flags text from a pdf text layer, where the column alignment
	// between descriptions and prices is often lost. The prompt warns the
	// model to re-associate them.
	PDFSource bool
}

// QuoteStructurer turns raw document text into a structured quote payload.
type QuoteStructurer interface {
	StructureQuote(ctx context.Context, req StructureRequest) (quote.Payload, []byte /*rawJSON*/, error)
}

// ReconcileRequest pairs a structured patient quote with one provider's
// effective price list.
type ReconcileRequest struct {
	Quote     quote.Payload
	PriceList []entity.PriceEntry
}

// OfferReconciler maps patient line items onto a provider's price list and
// produces a counter-offer payload.
type OfferReconciler interface {
	ReconcileOffer(ctx context.Context, req ReconcileRequest) (quote.OfferPayload, []byte /*rawJSON*/, error)
}
