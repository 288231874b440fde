package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/internal/async"
	"github.com/smilematch/quotes/internal/extract"
	"github.com/smilematch/quotes/internal/llm"
)

// processQuote runs the upload through extraction and structuring and
// persists the result. On success it chains an offers job.
func (p *Processor) processQuote(ctx context.Context, job async.Job, attempt int) error {
	start := time.Now()

	rec, err := p.quotes.GetByID(ctx, job.QuoteID)
	if err != nil {
		return Permanent(fmt.Errorf("load quote %s: %w", job.QuoteID, err))
	}

	switch constants.QuoteStatus(rec.Status) {
	case constants.QuoteUploaded:
		claimed, err := p.quotes.ClaimProcessing(ctx, job.QuoteID)
		if err != nil {
			return fmt.Errorf("claim quote %s: %w", job.QuoteID, err)
		}
		if !claimed {
			// Another delivery claimed it between the read and the swap.
			p.logger.Info("pipeline.process.claim_lost", "quote_id", job.QuoteID)
			return nil
		}
	case constants.QuoteInProcessing:
		if attempt == 1 {
			// Duplicate delivery of a quote some other worker is handling.
			p.logger.Info("pipeline.process.duplicate_delivery", "quote_id", job.QuoteID)
			return nil
		}
		// Our own retry; the claim from attempt 1 still stands.
	default:
		p.logger.Info("pipeline.process.already_final", "quote_id", job.QuoteID, "status", rec.Status)
		return nil
	}

	data, err := p.store.Get(rec.FilePath)
	if err != nil {
		return Permanent(fmt.Errorf("load document %s: %w", rec.FilePath, err))
	}

	res, err := p.extractor.Extract(ctx, rec.OriginalFilename, data)
	if err != nil {
		if errors.Is(err, extract.ErrScannedPDF) {
			return Permanent(err)
		}
		return fmt.Errorf("extract %s: %w", job.QuoteID, err)
	}

	payload, raw, err := p.structurer.StructureQuote(ctx, llm.StructureRequest{
		Text:      res.Text,
		PDFSource: res.PDFSource,
	})
	if err != nil {
		return fmt.Errorf("structure %s: %w", job.QuoteID, err)
	}
	if len(payload.LineItems) == 0 {
		return Permanent(fmt.Errorf("no treatment lines recognized in document"))
	}

	if err := p.quotes.MarkCompleted(ctx, job.QuoteID, raw); err != nil {
		return fmt.Errorf("persist payload %s: %w", job.QuoteID, err)
	}

	// Offer generation waits for the patient's confirm step; the confirmed
	// line items are what providers reconcile against.
	p.logger.Info("pipeline.process.ok",
		"quote_id", job.QuoteID,
		"method", res.Method,
		"line_items", len(payload.LineItems),
		"total", payload.Total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// userFacingMessage converts a pipeline failure into the message stored on the
// record and shown to the patient.
func userFacingMessage(err error) string {
	if errors.Is(err, extract.ErrScannedPDF) {
		return "We could not read this PDF because it contains no selectable text. Please upload a photo of the document instead."
	}
	if errors.Is(err, llm.ErrMalformedResponse) {
		return "We could not interpret this document as a dental quote. Please check the file and try again."
	}
	var msg string
	if errors.As(err, new(*permanentError)) {
		msg = "We could not process this document."
	} else {
		msg = "Processing failed repeatedly. Please try uploading the document again."
	}
	return msg
}
