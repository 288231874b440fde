package pipeline

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/extract"
	"github.com/smilematch/quotes/internal/llm"
	"github.com/smilematch/quotes/internal/quote"
	"github.com/smilematch/quotes/internal/repository"
)

var errNotFound = errors.New("blob not found")

// MockQuoteRepository is a mock implementation of repository.QuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) Create(ctx context.Context, patientID uuid.UUID, filePath, originalFilename string) (*entity.QuoteRecord, error) {
	args := m.Called(ctx, patientID, filePath, originalFilename)
	return args.Get(0).(*entity.QuoteRecord), args.Error(1)
}

func (m *MockQuoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.QuoteRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuoteRecord), args.Error(1)
}

func (m *MockQuoteRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.QuoteRecord, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]*entity.QuoteRecord), args.Error(1)
}

func (m *MockQuoteRepository) ClaimProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuoteRepository) MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockQuoteRepository) MarkError(ctx context.Context, id uuid.UUID, message string) error {
	args := m.Called(ctx, id, message)
	return args.Error(0)
}

func (m *MockQuoteRepository) UpdatePayload(ctx context.Context, id uuid.UUID, payload json.RawMessage) (bool, error) {
	args := m.Called(ctx, id, payload)
	return args.Bool(0), args.Error(1)
}

// MockOfferRepository is a mock implementation of repository.OfferRepository
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Create(ctx context.Context, quoteID, providerID uuid.UUID, payload json.RawMessage) (*entity.CounterOffer, error) {
	args := m.Called(ctx, quoteID, providerID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CounterOffer), args.Error(1)
}

func (m *MockOfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CounterOffer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entity.CounterOffer), args.Error(1)
}

func (m *MockOfferRepository) ExistsForQuote(ctx context.Context, quoteID uuid.UUID) (bool, error) {
	args := m.Called(ctx, quoteID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) ExistsForQuoteAndProvider(ctx context.Context, quoteID, providerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, quoteID, providerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.CounterOffer, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]*entity.CounterOffer), args.Error(1)
}

func (m *MockOfferRepository) ListAcceptedByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.CounterOffer, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]*entity.CounterOffer), args.Error(1)
}

func (m *MockOfferRepository) MarkViewed(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockOfferRepository) Accept(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) Reject(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockProviderRepository is a mock implementation of repository.ProviderRepository
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entity.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.Provider), args.Error(1)
}

func (m *MockProviderRepository) ListAll(ctx context.Context) ([]*entity.Provider, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Provider), args.Error(1)
}

func (m *MockProviderRepository) Facts(ctx context.Context, id uuid.UUID) (*entity.ProviderFacts, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entity.ProviderFacts), args.Error(1)
}

func (m *MockProviderRepository) SetCompletion(ctx context.Context, id uuid.UUID, field repository.CompletionField, done bool) error {
	args := m.Called(ctx, id, field, done)
	return args.Error(0)
}

// MockPatientRepository is a mock implementation of repository.PatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Patient, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.Patient), args.Error(1)
}

// MockNotificationRepository is a mock implementation of repository.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, userID uuid.UUID, kind constants.NotificationKind, message, actionURL string) (*entity.Notification, error) {
	args := m.Called(ctx, userID, kind, message, actionURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListUnread(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkReadByKind(ctx context.Context, userID uuid.UUID, kind constants.NotificationKind) error {
	args := m.Called(ctx, userID, kind)
	return args.Error(0)
}

// MockPriceListRepository is a mock implementation of repository.PriceListRepository
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

// memStore is an in-memory blob.Store.
type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore { return &memStore{blobs: map[string][]byte{}} }

func (s *memStore) Put(key string, data []byte) error {
	s.blobs[key] = data
	return nil
}

func (s *memStore) Get(key string) ([]byte, error) {
	data, ok := s.blobs[key]
	if !ok {
		return nil, errNotFound
	}
	return data, nil
}

func (s *memStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}

// stubExtractor returns a fixed extraction result.
type stubExtractor struct {
	res extract.Result
	err error
}

func (e *stubExtractor) Extract(context.Context, string, []byte) (extract.Result, error) {
	return e.res, e.err
}

// stubStructurer returns a fixed structured payload.
type stubStructurer struct {
	payload quote.Payload
	err     error
	calls   int
}

func (s *stubStructurer) StructureQuote(context.Context, llm.StructureRequest) (quote.Payload, []byte, error) {
	s.calls++
	if s.err != nil {
		return quote.Payload{}, nil, s.err
	}
	raw, _ := quote.Marshal(s.payload)
	return s.payload, raw, nil
}

// stubReconciler maps requests to canned offers, optionally failing for
// specific providers.
type stubReconciler struct {
	payload quote.OfferPayload
	err     error
	calls   int
}

func (s *stubReconciler) ReconcileOffer(context.Context, llm.ReconcileRequest) (quote.OfferPayload, []byte, error) {
	s.calls++
	if s.err != nil {
		return quote.OfferPayload{}, nil, s.err
	}
	raw, _ := json.Marshal(s.payload)
	return s.payload, raw, nil
}

// stubMailer records sends.
type stubMailer struct {
	sent []string
}

func (m *stubMailer) Send(to, _, _ string) error {
	m.sent = append(m.sent, to)
	return nil
}
