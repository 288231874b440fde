package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/internal/async"
	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/extract"
	"github.com/smilematch/quotes/internal/quote"
)

func uploadedQuote(id, patientID uuid.UUID, key string) *entity.QuoteRecord {
	return &entity.QuoteRecord{
		ID:               id,
		PatientID:        patientID,
		FilePath:         key,
		OriginalFilename: "preventivo.pdf",
		Status:           string(constants.QuoteUploaded),
	}
}

type processFixture struct {
	quotes     *MockQuoteRepository
	store      *memStore
	structurer *stubStructurer
	proc       *Processor
}

func newProcessFixture(extractRes extract.Result, extractErr error) *processFixture {
	f := &processFixture{
		quotes: new(MockQuoteRepository),
		store:  newMemStore(),
		structurer: &stubStructurer{
			payload: quote.Payload{
				LineItems: []quote.LineItem{{Description: "Igiene dentale", Quantity: 1, Price: 80}},
				Total:     80,
			},
		},
	}
	f.proc = NewProcessor(Deps{
		Quotes:     f.quotes,
		Store:      f.store,
		Extractor:  &stubExtractor{res: extractRes, err: extractErr},
		Structurer: f.structurer,
	}, nil)
	return f
}

func TestProcessQuoteHappyPath(t *testing.T) {
	quoteID, patientID := uuid.New(), uuid.New()
	f := newProcessFixture(extract.Result{Text: "Igiene dentale 80", Method: "pdf-text", PDFSource: true}, nil)
	f.store.blobs["quotes/doc.pdf"] = []byte("%PDF")

	f.quotes.On("GetByID", mock.Anything, quoteID).Return(uploadedQuote(quoteID, patientID, "quotes/doc.pdf"), nil)
	f.quotes.On("ClaimProcessing", mock.Anything, quoteID).Return(true, nil)
	f.quotes.On("MarkCompleted", mock.Anything, quoteID, mock.Anything).Return(nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: quoteID, Kind: async.KindProcess}, 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, f.structurer.calls)
	f.quotes.AssertExpectations(t)
}

func TestProcessQuoteScannedPDFIsPermanent(t *testing.T) {
	quoteID := uuid.New()
	f := newProcessFixture(extract.Result{}, extract.ErrScannedPDF)
	f.store.blobs["quotes/doc.pdf"] = []byte("%PDF")

	f.quotes.On("GetByID", mock.Anything, quoteID).Return(uploadedQuote(quoteID, uuid.New(), "quotes/doc.pdf"), nil)
	f.quotes.On("ClaimProcessing", mock.Anything, quoteID).Return(true, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: quoteID, Kind: async.KindProcess}, 1)

	assert.True(t, IsPermanent(err))
	assert.Zero(t, f.structurer.calls)
}

func TestProcessQuoteTransientExtractFailureRetries(t *testing.T) {
	quoteID := uuid.New()
	f := newProcessFixture(extract.Result{}, errors.New("ocr timeout"))
	f.store.blobs["quotes/doc.jpg"] = []byte{0xFF}

	rec := uploadedQuote(quoteID, uuid.New(), "quotes/doc.jpg")
	f.quotes.On("GetByID", mock.Anything, quoteID).Return(rec, nil)
	f.quotes.On("ClaimProcessing", mock.Anything, quoteID).Return(true, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: quoteID, Kind: async.KindProcess}, 1)

	assert.Error(t, err)
	assert.False(t, IsPermanent(err))
}

func TestProcessQuoteDuplicateDeliveryIsNoop(t *testing.T) {
	quoteID := uuid.New()
	f := newProcessFixture(extract.Result{Text: "x"}, nil)

	rec := uploadedQuote(quoteID, uuid.New(), "quotes/doc.pdf")
	rec.Status = string(constants.QuoteInProcessing)
	f.quotes.On("GetByID", mock.Anything, quoteID).Return(rec, nil)

	// First attempt on an in_processing record means another worker owns it.
	err := f.proc.Handle(context.Background(), async.Job{QuoteID: quoteID, Kind: async.KindProcess}, 1)

	assert.NoError(t, err)
	assert.Zero(t, f.structurer.calls)
	f.quotes.AssertNotCalled(t, "ClaimProcessing", mock.Anything, mock.Anything)
}

func TestProcessQuoteRetryProceedsPastOwnClaim(t *testing.T) {
	quoteID := uuid.New()
	f := newProcessFixture(extract.Result{Text: "Igiene dentale 80", Method: "image-ocr"}, nil)
	f.store.blobs["quotes/doc.jpg"] = []byte{0xFF}

	rec := uploadedQuote(quoteID, uuid.New(), "quotes/doc.jpg")
	rec.Status = string(constants.QuoteInProcessing)
	f.quotes.On("GetByID", mock.Anything, quoteID).Return(rec, nil)
	f.quotes.On("MarkCompleted", mock.Anything, quoteID, mock.Anything).Return(nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: quoteID, Kind: async.KindProcess}, 2)

	assert.NoError(t, err)
	assert.Equal(t, 1, f.structurer.calls)
}

func TestProcessQuoteClaimLost(t *testing.T) {
	quoteID := uuid.New()
	f := newProcessFixture(extract.Result{Text: "x"}, nil)

	f.quotes.On("GetByID", mock.Anything, quoteID).Return(uploadedQuote(quoteID, uuid.New(), "quotes/doc.pdf"), nil)
	f.quotes.On("ClaimProcessing", mock.Anything, quoteID).Return(false, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: quoteID, Kind: async.KindProcess}, 1)

	assert.NoError(t, err)
	assert.Zero(t, f.structurer.calls)
}

func TestProcessQuoteAlreadyFinalIsNoop(t *testing.T) {
	quoteID := uuid.New()
	f := newProcessFixture(extract.Result{Text: "x"}, nil)

	rec := uploadedQuote(quoteID, uuid.New(), "quotes/doc.pdf")
	rec.Status = string(constants.QuoteCompleted)
	f.quotes.On("GetByID", mock.Anything, quoteID).Return(rec, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: quoteID, Kind: async.KindProcess}, 1)

	assert.NoError(t, err)
	assert.Zero(t, f.structurer.calls)
}

func TestProcessQuoteEmptyStructuredResultIsPermanent(t *testing.T) {
	quoteID := uuid.New()
	f := newProcessFixture(extract.Result{Text: "no treatments here"}, nil)
	f.structurer.payload = quote.Payload{}
	f.store.blobs["quotes/doc.pdf"] = []byte("%PDF")

	f.quotes.On("GetByID", mock.Anything, quoteID).Return(uploadedQuote(quoteID, uuid.New(), "quotes/doc.pdf"), nil)
	f.quotes.On("ClaimProcessing", mock.Anything, quoteID).Return(true, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: quoteID, Kind: async.KindProcess}, 1)

	assert.True(t, IsPermanent(err))
}

func TestAbandonMarksQuoteErrored(t *testing.T) {
	quoteID := uuid.New()
	f := newProcessFixture(extract.Result{}, nil)
	f.quotes.On("MarkError", mock.Anything, quoteID, mock.MatchedBy(func(msg string) bool {
		return msg != ""
	})).Return(nil)

	f.proc.Abandon(context.Background(), async.Job{QuoteID: quoteID, Kind: async.KindProcess}, extract.ErrScannedPDF)

	f.quotes.AssertExpectations(t)
}

func TestAbandonOffersLeavesQuoteCompleted(t *testing.T) {
	f := newProcessFixture(extract.Result{}, nil)

	f.proc.Abandon(context.Background(), async.Job{QuoteID: uuid.New(), Kind: async.KindOffers}, errors.New("llm down"))

	f.quotes.AssertNotCalled(t, "MarkError", mock.Anything, mock.Anything, mock.Anything)
}
