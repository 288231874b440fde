package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/constants"
	quotesv1 "github.com/smilematch/quotes/gen/proto/quotes/v1"
	"github.com/smilematch/quotes/internal/async"
	"github.com/smilematch/quotes/internal/blob"
	"github.com/smilematch/quotes/internal/common"
	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/normalize"
	"github.com/smilematch/quotes/internal/notify"
	"github.com/smilematch/quotes/internal/quote"
	"github.com/smilematch/quotes/internal/repository"
)

// MaxUploadBytes caps quote document uploads.
const MaxUploadBytes = 20 << 20

type QuotesService struct {
	quotesv1.UnimplementedQuotesServiceServer

	quotes    repository.QuoteRepository
	offers    repository.OfferRepository
	patients  repository.PatientRepository
	providers repository.ProviderRepository

	store      blob.Store
	normalizer *normalize.Normalizer
	queue      async.Queue
	notifier   *notify.Service

	logger *slog.Logger
}

func NewQuotesService(
	quotes repository.QuoteRepository,
	offers repository.OfferRepository,
	patients repository.PatientRepository,
	providers repository.ProviderRepository,
	store blob.Store,
	normalizer *normalize.Normalizer,
	queue async.Queue,
	notifier *notify.Service,
	logger *slog.Logger,
) *QuotesService {
	return &QuotesService{
		quotes:     quotes,
		offers:     offers,
		patients:   patients,
		providers:  providers,
		store:      store,
		normalizer: normalizer,
		queue:      queue,
		notifier:   notifier,
		logger:     logger,
	}
}

// UploadQuote implements quotesv1.QuotesServiceServer
func (s *QuotesService) UploadQuote(ctx context.Context, req *quotesv1.UploadQuoteRequest) (*quotesv1.UploadQuoteResponse, error) {
	patientID, err := parseID(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	content := req.GetContent()
	if len(content) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	if len(content) > MaxUploadBytes {
		return nil, common.InvalidArgumentErrorf("content exceeds %d bytes", MaxUploadBytes)
	}

	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		s.logger.Error("patient not found for upload", "patient_id", patientID, "error", err)
		return nil, common.NotFoundError("patient not found")
	}

	norm, err := s.normalizer.Normalize(patientID, filename, content)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("unsupported document: %v", err)
	}
	if err := s.store.Put(norm.Key, norm.Data); err != nil {
		s.logger.Error("store upload failed", "patient_id", patientID, "key", norm.Key, "error", err)
		return nil, common.InternalError("store document failed")
	}

	rec, err := s.quotes.Create(ctx, patientID, norm.Key, filename)
	if err != nil {
		return nil, common.InternalError("create quote failed")
	}

	if err := s.queue.Enqueue(ctx, async.Job{QuoteID: rec.ID, Kind: async.KindProcess}); err != nil {
		s.logger.Error("enqueue process job failed", "quote_id", rec.ID, "error", err)
	}

	s.logger.Info("quote uploaded", "quote_id", rec.ID, "patient_id", patientID, "format", norm.Format, "bytes", len(norm.Data))
	return &quotesv1.UploadQuoteResponse{
		QuoteId: rec.ID.String(),
		Status:  rec.Status,
	}, nil
}

// GetQuoteStatus implements quotesv1.QuotesServiceServer
func (s *QuotesService) GetQuoteStatus(ctx context.Context, req *quotesv1.GetQuoteStatusRequest) (*quotesv1.GetQuoteStatusResponse, error) {
	patientID, err := parseID(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}
	quoteID, err := parseID(req.GetQuoteId(), "quote_id")
	if err != nil {
		return nil, err
	}

	rec, err := s.ownedQuote(ctx, patientID, quoteID)
	if err != nil {
		return nil, err
	}
	return &quotesv1.GetQuoteStatusResponse{Quote: toProtoQuote(rec)}, nil
}

// ListQuotes implements quotesv1.QuotesServiceServer
func (s *QuotesService) ListQuotes(ctx context.Context, req *quotesv1.ListQuotesRequest) (*quotesv1.ListQuotesResponse, error) {
	patientID, err := parseID(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}
	recs, err := s.quotes.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, common.InternalError("list quotes failed")
	}
	out := make([]*quotesv1.Quote, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toProtoQuote(rec))
	}
	return &quotesv1.ListQuotesResponse{Quotes: out}, nil
}

// ConfirmQuote implements quotesv1.QuotesServiceServer. The patient submits
// edited line items; the stored total is recomputed as their sum.
func (s *QuotesService) ConfirmQuote(ctx context.Context, req *quotesv1.ConfirmQuoteRequest) (*quotesv1.ConfirmQuoteResponse, error) {
	patientID, err := parseID(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}
	quoteID, err := parseID(req.GetQuoteId(), "quote_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetLineItems()) == 0 {
		return nil, common.InvalidArgumentError("line_items is required")
	}

	if _, err := s.ownedQuote(ctx, patientID, quoteID); err != nil {
		return nil, err
	}

	items := make([]quote.LineItem, 0, len(req.GetLineItems()))
	for i, li := range req.GetLineItems() {
		if strings.TrimSpace(li.GetDescription()) == "" {
			return nil, common.InvalidArgumentErrorf("line_items[%d].description is required", i)
		}
		if li.GetQuantity() < 1 {
			return nil, common.InvalidArgumentErrorf("line_items[%d].quantity must be at least 1", i)
		}
		if li.GetPrice() < 0 {
			return nil, common.InvalidArgumentErrorf("line_items[%d].price must not be negative", i)
		}
		items = append(items, quote.LineItem{
			Description: li.GetDescription(),
			Quantity:    int(li.GetQuantity()),
			Price:       li.GetPrice(),
		})
	}

	payload := quote.Confirmed(items)
	raw, err := quote.Marshal(payload)
	if err != nil {
		return nil, common.InternalError("encode payload failed")
	}

	updated, err := s.quotes.UpdatePayload(ctx, quoteID, raw)
	if err != nil {
		return nil, common.InternalError("confirm quote failed")
	}
	if !updated {
		return nil, common.FailedPreconditionError("quote is not in completed state")
	}

	// The confirmed line items are what providers bid on; offer generation
	// starts here, not when processing finishes.
	if err := s.queue.Enqueue(ctx, async.Job{QuoteID: quoteID, Kind: async.KindOffers}); err != nil {
		s.logger.Error("enqueue offers job failed", "quote_id", quoteID, "error", err)
	}

	rec, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, common.InternalError("reload quote failed")
	}
	s.logger.Info("quote confirmed", "quote_id", quoteID, "line_items", len(items), "total", payload.Total)
	return &quotesv1.ConfirmQuoteResponse{Quote: toProtoQuote(rec)}, nil
}

// GetOffersReady implements quotesv1.QuotesServiceServer
func (s *QuotesService) GetOffersReady(ctx context.Context, req *quotesv1.GetOffersReadyRequest) (*quotesv1.GetOffersReadyResponse, error) {
	patientID, err := parseID(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}
	quoteID, err := parseID(req.GetQuoteId(), "quote_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedQuote(ctx, patientID, quoteID); err != nil {
		return nil, err
	}

	ready, err := s.offers.ExistsForQuote(ctx, quoteID)
	if err != nil {
		return nil, common.InternalError("offer lookup failed")
	}
	return &quotesv1.GetOffersReadyResponse{Ready: ready}, nil
}

// ListOffers implements quotesv1.QuotesServiceServer
func (s *QuotesService) ListOffers(ctx context.Context, req *quotesv1.ListOffersRequest) (*quotesv1.ListOffersResponse, error) {
	patientID, err := parseID(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}

	offers, err := s.offers.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, common.InternalError("list offers failed")
	}

	// Unseen offers up front, everything the patient already acted on below.
	resp := &quotesv1.ListOffersResponse{}
	for _, off := range offers {
		po := toProtoOffer(off)
		if prov, err := s.providers.GetByID(ctx, off.ProviderID); err == nil {
			po.ProviderName = prov.BusinessName
		}
		if off.Status == string(constants.OfferSent) {
			resp.NewOffers = append(resp.NewOffers, po)
		} else {
			resp.ArchivedOffers = append(resp.ArchivedOffers, po)
		}
	}
	return resp, nil
}

// MarkOffersViewed implements quotesv1.QuotesServiceServer
func (s *QuotesService) MarkOffersViewed(ctx context.Context, req *quotesv1.MarkOffersViewedRequest) (*quotesv1.MarkOffersViewedResponse, error) {
	patientID, err := parseID(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetOfferIds()) == 0 {
		return nil, common.InvalidArgumentError("offer_ids is required")
	}

	ids := make([]uuid.UUID, 0, len(req.GetOfferIds()))
	for _, raw := range req.GetOfferIds() {
		id, err := parseID(raw, "offer_ids")
		if err != nil {
			return nil, err
		}
		if _, err := s.ownedOffer(ctx, patientID, id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := s.offers.MarkViewed(ctx, ids); err != nil {
		return nil, common.InternalError("mark offers viewed failed")
	}
	if pat, err := s.patients.GetByID(ctx, patientID); err == nil {
		s.notifier.OffersViewed(ctx, pat.UserID)
	}
	return &quotesv1.MarkOffersViewedResponse{}, nil
}

// AcceptOffer implements quotesv1.QuotesServiceServer. The first accepted
// offer on a quote wins; later accepts fail with FailedPrecondition.
func (s *QuotesService) AcceptOffer(ctx context.Context, req *quotesv1.AcceptOfferRequest) (*quotesv1.AcceptOfferResponse, error) {
	patientID, err := parseID(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}
	offerID, err := parseID(req.GetOfferId(), "offer_id")
	if err != nil {
		return nil, err
	}

	off, err := s.ownedOffer(ctx, patientID, offerID)
	if err != nil {
		return nil, err
	}
	if off.Status == string(constants.OfferAccepted) {
		// Repeated accept of the same offer is a no-op.
		return &quotesv1.AcceptOfferResponse{Offer: toProtoOffer(off)}, nil
	}

	accepted, err := s.offers.Accept(ctx, offerID)
	if err != nil {
		return nil, common.InternalError("accept offer failed")
	}
	if !accepted {
		return nil, common.FailedPreconditionError("offer can no longer be accepted")
	}

	off, err = s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, common.InternalError("reload offer failed")
	}

	if prov, err := s.providers.GetByID(ctx, off.ProviderID); err == nil {
		patientName := ""
		if pat, err := s.patients.GetByID(ctx, patientID); err == nil {
			patientName = pat.Name
		}
		s.notifier.OfferAccepted(ctx, prov, patientName)
	}

	s.logger.Info("offer accepted", "offer_id", offerID, "quote_id", off.QuoteID, "patient_id", patientID)
	return &quotesv1.AcceptOfferResponse{Offer: toProtoOffer(off)}, nil
}

// RejectOffer implements quotesv1.QuotesServiceServer
func (s *QuotesService) RejectOffer(ctx context.Context, req *quotesv1.RejectOfferRequest) (*quotesv1.RejectOfferResponse, error) {
	patientID, err := parseID(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}
	offerID, err := parseID(req.GetOfferId(), "offer_id")
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedOffer(ctx, patientID, offerID); err != nil {
		return nil, err
	}

	rejected, err := s.offers.Reject(ctx, offerID)
	if err != nil {
		return nil, common.InternalError("reject offer failed")
	}
	if !rejected {
		return nil, common.FailedPreconditionError("offer can no longer be rejected")
	}

	off, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, common.InternalError("reload offer failed")
	}
	return &quotesv1.RejectOfferResponse{Offer: toProtoOffer(off)}, nil
}

// ownedQuote loads a quote and verifies the acting patient owns it.
func (s *QuotesService) ownedQuote(ctx context.Context, patientID, quoteID uuid.UUID) (*entity.QuoteRecord, error) {
	rec, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, common.NotFoundError("quote not found")
	}
	if rec.PatientID != patientID {
		s.logger.Warn("quote access denied", "quote_id", quoteID, "patient_id", patientID)
		return nil, common.PermissionDeniedError("quote belongs to another patient")
	}
	return rec, nil
}

// ownedOffer loads an offer and verifies the acting patient owns the quote
// behind it.
func (s *QuotesService) ownedOffer(ctx context.Context, patientID, offerID uuid.UUID) (*entity.CounterOffer, error) {
	off, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, common.NotFoundError("offer not found")
	}
	if _, err := s.ownedQuote(ctx, patientID, off.QuoteID); err != nil {
		return nil, err
	}
	return off, nil
}

func toProtoQuote(rec *entity.QuoteRecord) *quotesv1.Quote {
	q := &quotesv1.Quote{
		Id:               rec.ID.String(),
		PatientId:        rec.PatientID.String(),
		OriginalFilename: rec.OriginalFilename,
		Status:           rec.Status,
		CreatedAt:        rec.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        rec.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if rec.ErrorMessage != nil {
		q.ErrorMessage = *rec.ErrorMessage
	}
	if len(rec.Payload) > 0 {
		if p, err := quote.ParsePayload(rec.Payload); err == nil {
			q.Payload = toProtoPayload(p)
		}
	}
	return q
}

func toProtoPayload(p quote.Payload) *quotesv1.QuotePayload {
	items := make([]*quotesv1.LineItem, 0, len(p.LineItems))
	for _, it := range p.LineItems {
		items = append(items, &quotesv1.LineItem{
			Description: it.Description,
			Quantity:    int32(it.Quantity),
			Price:       it.Price,
		})
	}
	return &quotesv1.QuotePayload{LineItems: items, Total: p.Total}
}

func toProtoOffer(off *entity.CounterOffer) *quotesv1.Offer {
	o := &quotesv1.Offer{
		Id:         off.ID.String(),
		QuoteId:    off.QuoteID.String(),
		ProviderId: off.ProviderID.String(),
		Status:     off.Status,
		CreatedAt:  off.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  off.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p, err := quote.ParseOfferPayload(off.Payload); err == nil {
		lines := make([]*quotesv1.OfferLine, 0, len(p.Lines))
		for _, l := range p.Lines {
			lines = append(lines, &quotesv1.OfferLine{
				OriginalDescription: l.OriginalDescription,
				MatchedDescription:  l.MatchedDescription,
				Quantity:            int32(l.Quantity),
				Price:               l.Price,
			})
		}
		o.Payload = &quotesv1.OfferPayload{OfferItems: lines, Total: p.Total}
	}
	return o
}
