package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/internal/async"
	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/notify"
	"github.com/smilematch/quotes/internal/pricelist"
	"github.com/smilematch/quotes/internal/quote"
)

// Milan city centre, with eligible clinics a few hundred metres away.
const (
	milanLat = 45.4642
	milanLng = 9.1900
)

func eligibleProvider(name string) *entity.Provider {
	done := time.Now()
	return &entity.Provider{
		ID:                   uuid.New(),
		UserID:               uuid.New(),
		BusinessName:         name,
		Email:                name + "@clinic.example",
		Latitude:             milanLat + 0.002,
		Longitude:            milanLng - 0.002,
		PriceListCompletedAt: &done,
		ProfileCompletedAt:   &done,
		StaffCompletedAt:     &done,
	}
}

func completedQuote(t *testing.T, patientID uuid.UUID) *entity.QuoteRecord {
	t.Helper()
	raw, err := quote.Marshal(quote.Payload{
		LineItems: []quote.LineItem{{Description: "Igiene dentale", Quantity: 1, Price: 80}},
		Total:     80,
	})
	require.NoError(t, err)
	return &entity.QuoteRecord{
		ID:        uuid.New(),
		PatientID: patientID,
		FilePath:  "quotes/doc.pdf",
		Status:    string(constants.QuoteCompleted),
		Payload:   raw,
	}
}

type offerFixture struct {
	quotes    *MockQuoteRepository
	offers    *MockOfferRepository
	providers *MockProviderRepository
	patients  *MockPatientRepository
	notifs    *MockNotificationRepository
	prices    *MockPriceListRepository
	recon     *stubReconciler
	mailer    *stubMailer
	proc      *Processor
	patientID uuid.UUID
}

func newOfferFixture() *offerFixture {
	f := &offerFixture{
		quotes:    new(MockQuoteRepository),
		offers:    new(MockOfferRepository),
		providers: new(MockProviderRepository),
		patients:  new(MockPatientRepository),
		notifs:    new(MockNotificationRepository),
		prices:    new(MockPriceListRepository),
		mailer:    &stubMailer{},
		patientID: uuid.New(),
		recon: &stubReconciler{
			payload: quote.OfferPayload{
				Lines: []quote.OfferLine{{
					OriginalDescription: "Igiene dentale",
					MatchedDescription:  "Igiene dentale professionale",
					Quantity:            1,
					Price:               65,
				}},
				Total: 65,
			},
		},
	}
	f.proc = NewProcessor(Deps{
		Quotes:     f.quotes,
		Offers:     f.offers,
		Providers:  f.providers,
		Patients:   f.patients,
		Store:      newMemStore(),
		Reconciler: f.recon,
		Prices:     pricelist.NewResolver(f.prices, nil),
		Notifier:   notify.NewService(f.notifs, f.mailer, "http://test", nil),
		RadiusKm:   10,
		MaxMatch:   3,
	}, nil)

	f.patients.On("GetByID", mock.Anything, f.patientID).Return(&entity.Patient{
		ID:        f.patientID,
		UserID:    uuid.New(),
		Name:      "Mario Rossi",
		Email:     "mario@example.com",
		Latitude:  milanLat,
		Longitude: milanLng,
	}, nil)
	return f
}

// pricedList makes every provider resolve to the same one-entry price list.
func (f *offerFixture) pricedList() {
	f.prices.On("ActiveCatalog", mock.Anything).Return([]*entity.CatalogItem{}, nil)
	f.prices.On("OverridesByProvider", mock.Anything, mock.Anything).Return([]*entity.ProviderOverride{}, nil)
	f.prices.On("CustomItemsByProvider", mock.Anything, mock.Anything).Return([]*entity.CustomItem{
		{ID: uuid.New(), Name: "Igiene dentale professionale", Price: 65},
	}, nil)
}

func TestGenerateOffersFansOutToNearbyProviders(t *testing.T) {
	f := newOfferFixture()
	rec := completedQuote(t, f.patientID)
	provs := []*entity.Provider{eligibleProvider("a"), eligibleProvider("b"), eligibleProvider("c")}

	f.quotes.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)
	f.providers.On("ListAll", mock.Anything).Return(provs, nil)
	f.pricedList()
	f.offers.On("ExistsForQuoteAndProvider", mock.Anything, rec.ID, mock.Anything).Return(false, nil)
	f.offers.On("Create", mock.Anything, rec.ID, mock.Anything, mock.Anything).Return(&entity.CounterOffer{}, nil)
	f.notifs.On("Create", mock.Anything, mock.Anything, constants.NotifNewOffer, mock.Anything, mock.Anything).Return(nil, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: rec.ID, Kind: async.KindOffers}, 1)

	assert.NoError(t, err)
	assert.Equal(t, 3, f.recon.calls)
	f.offers.AssertNumberOfCalls(t, "Create", 3)
	// Each offer mails the patient and the provider who sent it.
	assert.Len(t, f.mailer.sent, 6)
	assert.Contains(t, f.mailer.sent, "mario@example.com")
	assert.Contains(t, f.mailer.sent, "a@clinic.example")
	assert.Contains(t, f.mailer.sent, "b@clinic.example")
	assert.Contains(t, f.mailer.sent, "c@clinic.example")
}

func TestGenerateOffersSkipsProviderWithExistingOffer(t *testing.T) {
	f := newOfferFixture()
	rec := completedQuote(t, f.patientID)
	dup, fresh := eligibleProvider("dup"), eligibleProvider("fresh")

	f.quotes.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)
	f.providers.On("ListAll", mock.Anything).Return([]*entity.Provider{dup, fresh}, nil)
	f.pricedList()
	f.offers.On("ExistsForQuoteAndProvider", mock.Anything, rec.ID, dup.ID).Return(true, nil)
	f.offers.On("ExistsForQuoteAndProvider", mock.Anything, rec.ID, fresh.ID).Return(false, nil)
	f.offers.On("Create", mock.Anything, rec.ID, fresh.ID, mock.Anything).Return(&entity.CounterOffer{}, nil)
	f.notifs.On("Create", mock.Anything, mock.Anything, constants.NotifNewOffer, mock.Anything, mock.Anything).Return(nil, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: rec.ID, Kind: async.KindOffers}, 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, f.recon.calls)
	f.offers.AssertNumberOfCalls(t, "Create", 1)
}

func TestGenerateOffersSkipsEmptyPriceList(t *testing.T) {
	f := newOfferFixture()
	rec := completedQuote(t, f.patientID)

	f.quotes.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)
	f.providers.On("ListAll", mock.Anything).Return([]*entity.Provider{eligibleProvider("bare")}, nil)
	f.prices.On("ActiveCatalog", mock.Anything).Return([]*entity.CatalogItem{}, nil)
	f.prices.On("OverridesByProvider", mock.Anything, mock.Anything).Return([]*entity.ProviderOverride{}, nil)
	f.prices.On("CustomItemsByProvider", mock.Anything, mock.Anything).Return([]*entity.CustomItem{}, nil)
	f.offers.On("ExistsForQuoteAndProvider", mock.Anything, rec.ID, mock.Anything).Return(false, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: rec.ID, Kind: async.KindOffers}, 1)

	assert.NoError(t, err)
	assert.Zero(t, f.recon.calls)
	f.offers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateOffersPersistsFullyUnmatchedOffer(t *testing.T) {
	f := newOfferFixture()
	rec := completedQuote(t, f.patientID)
	// Nothing in the price list fits; every line comes back zero-priced.
	f.recon.payload = quote.OfferPayload{
		Lines: []quote.OfferLine{{
			OriginalDescription: "Igiene dentale",
			MatchedDescription:  quote.NoMatch,
			Quantity:            1,
			Price:               0,
		}},
	}

	f.quotes.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)
	f.providers.On("ListAll", mock.Anything).Return([]*entity.Provider{eligibleProvider("far-menu")}, nil)
	f.pricedList()
	f.offers.On("ExistsForQuoteAndProvider", mock.Anything, rec.ID, mock.Anything).Return(false, nil)
	f.offers.On("Create", mock.Anything, rec.ID, mock.Anything, mock.Anything).Return(&entity.CounterOffer{}, nil)
	f.notifs.On("Create", mock.Anything, mock.Anything, constants.NotifNewOffer, mock.Anything, mock.Anything).Return(nil, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: rec.ID, Kind: async.KindOffers}, 1)

	assert.NoError(t, err)
	f.offers.AssertNumberOfCalls(t, "Create", 1)
	assert.Contains(t, f.mailer.sent, "mario@example.com")
}

func TestGenerateOffersIsolatesProviderFailures(t *testing.T) {
	f := newOfferFixture()
	rec := completedQuote(t, f.patientID)
	broken, ok := eligibleProvider("broken"), eligibleProvider("ok")

	f.quotes.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)
	f.providers.On("ListAll", mock.Anything).Return([]*entity.Provider{broken, ok}, nil)
	f.pricedList()
	f.offers.On("ExistsForQuoteAndProvider", mock.Anything, rec.ID, broken.ID).Return(false, errors.New("db down"))
	f.offers.On("ExistsForQuoteAndProvider", mock.Anything, rec.ID, ok.ID).Return(false, nil)
	f.offers.On("Create", mock.Anything, rec.ID, ok.ID, mock.Anything).Return(&entity.CounterOffer{}, nil)
	f.notifs.On("Create", mock.Anything, mock.Anything, constants.NotifNewOffer, mock.Anything, mock.Anything).Return(nil, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: rec.ID, Kind: async.KindOffers}, 1)

	// One provider failing must not fail the job while another succeeded.
	assert.NoError(t, err)
	f.offers.AssertNumberOfCalls(t, "Create", 1)
}

func TestGenerateOffersFailsWhenEveryProviderFails(t *testing.T) {
	f := newOfferFixture()
	rec := completedQuote(t, f.patientID)
	f.recon.err = errors.New("llm unavailable")

	f.quotes.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)
	f.providers.On("ListAll", mock.Anything).Return([]*entity.Provider{eligibleProvider("a"), eligibleProvider("b")}, nil)
	f.pricedList()
	f.offers.On("ExistsForQuoteAndProvider", mock.Anything, rec.ID, mock.Anything).Return(false, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: rec.ID, Kind: async.KindOffers}, 1)

	assert.Error(t, err)
	assert.False(t, IsPermanent(err))
	f.offers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateOffersNoopWhenQuoteNotCompleted(t *testing.T) {
	f := newOfferFixture()
	rec := completedQuote(t, f.patientID)
	rec.Status = string(constants.QuoteInProcessing)

	f.quotes.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: rec.ID, Kind: async.KindOffers}, 1)

	assert.NoError(t, err)
	f.providers.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestGenerateOffersNoopWhenNoEligibleProviderInRange(t *testing.T) {
	f := newOfferFixture()
	rec := completedQuote(t, f.patientID)
	far := eligibleProvider("rome")
	far.Latitude, far.Longitude = 41.9028, 12.4964

	f.quotes.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)
	f.providers.On("ListAll", mock.Anything).Return([]*entity.Provider{far}, nil)

	err := f.proc.Handle(context.Background(), async.Job{QuoteID: rec.ID, Kind: async.KindOffers}, 1)

	assert.NoError(t, err)
	assert.Zero(t, f.recon.calls)
}
