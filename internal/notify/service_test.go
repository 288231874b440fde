package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/internal/entity"
)

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

type recordingMailer struct {
	to      []string
	subject []string
	err     error
}

func (m *recordingMailer) Send(to, subject, _ string) error {
	m.to = append(m.to, to)
	m.subject = append(m.subject, subject)
	return m.err
}

func testPatient() *entity.Patient {
	return &entity.Patient{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Mario Rossi",
		Email:  "mario@example.com",
	}
}

func TestOfferReceivedStoresNotificationAndMails(t *testing.T) {
	patient := testPatient()
	repo := new(MockNotificationRepository)
	mailer := &recordingMailer{}
	repo.On("Create", mock.Anything, patient.UserID, constants.NotifNewOffer,
		mock.MatchedBy(func(msg string) bool { return msg != "" }),
		"https://app.example/offers").Return(nil, nil)

	NewService(repo, mailer, "https://app.example", nil).OfferReceived(context.Background(), patient, "Studio Bianchi")

	repo.AssertExpectations(t)
	assert.Equal(t, []string{"mario@example.com"}, mailer.to)
}

func TestOfferReceivedSurvivesStoreFailure(t *testing.T) {
	patient := testPatient()
	repo := new(MockNotificationRepository)
	mailer := &recordingMailer{}
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))

	// Must not panic or propagate; mail still goes out.
	NewService(repo, mailer, "https://app.example", nil).OfferReceived(context.Background(), patient, "Studio Bianchi")

	assert.Len(t, mailer.to, 1)
}

func TestOfferSentToProviderMailsWithoutPatientData(t *testing.T) {
	provider := &entity.Provider{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		BusinessName: "Studio Bianchi",
		Email:        "studio@example.com",
	}
	repo := new(MockNotificationRepository)
	mailer := &recordingMailer{}

	NewService(repo, mailer, "https://app.example", nil).OfferSentToProvider(context.Background(), provider)

	// Informational mail only: no in-app row, nothing about the patient.
	assert.Equal(t, []string{"studio@example.com"}, mailer.to)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOffersViewedClearsUnreadNewOfferNotifications(t *testing.T) {
	userID := uuid.New()
	repo := new(MockNotificationRepository)
	repo.On("MarkReadByKind", mock.Anything, userID, constants.NotifNewOffer).Return(nil)

	NewService(repo, &recordingMailer{}, "https://app.example", nil).OffersViewed(context.Background(), userID)

	repo.AssertExpectations(t)
}

func TestOfferAcceptedNotifiesProvider(t *testing.T) {
	provider := &entity.Provider{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		BusinessName: "Studio Bianchi",
		Email:        "studio@example.com",
	}
	repo := new(MockNotificationRepository)
	mailer := &recordingMailer{err: errors.New("smtp down")}
	repo.On("Create", mock.Anything, provider.UserID, constants.NotifOfferAccepted,
		mock.Anything, "https://app.example/provider/offers").Return(nil, nil)

	// Mail failure is swallowed too.
	NewService(repo, mailer, "https://app.example", nil).OfferAccepted(context.Background(), provider, "Mario Rossi")

	repo.AssertExpectations(t)
}
