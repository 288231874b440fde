package eligibility

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/repository"
)

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

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name  string
		facts entity.ProviderFacts
		want  Completion
	}{
		{
			name:  "nothing done",
			facts: entity.ProviderFacts{},
			want:  Completion{},
		},
		{
			name: "all thresholds met",
			facts: entity.ProviderFacts{
				HasDescription:        true,
				PhotoCount:            3,
				StaffCount:            1,
				ActivePricedOverrides: 3,
			},
			want: Completion{PriceList: true, Profile: true, Staff: true},
		},
		{
			name: "two priced entries is not enough",
			facts: entity.ProviderFacts{
				ActivePricedOverrides: 2,
			},
			want: Completion{},
		},
		{
			name: "photos without description",
			facts: entity.ProviderFacts{
				PhotoCount: 5,
			},
			want: Completion{},
		},
		{
			name: "description without enough photos",
			facts: entity.ProviderFacts{
				HasDescription: true,
				PhotoCount:     2,
			},
			want: Completion{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(&tt.facts))
		})
	}
}

func TestReconcileStampsNewlyCompleteMarkers(t *testing.T) {
	id := uuid.New()
	repo := new(MockProviderRepository)
	repo.On("Facts", mock.Anything, id).Return(&entity.ProviderFacts{
		HasDescription:        true,
		PhotoCount:            4,
		StaffCount:            2,
		ActivePricedOverrides: 5,
	}, nil)
	repo.On("SetCompletion", mock.Anything, id, repository.CompletionPriceList, true).Return(nil)
	repo.On("SetCompletion", mock.Anything, id, repository.CompletionProfile, true).Return(nil)
	repo.On("SetCompletion", mock.Anything, id, repository.CompletionStaff, true).Return(nil)

	got, err := NewReconciler(repo, nil).Reconcile(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, Completion{PriceList: true, Profile: true, Staff: true}, got)
	repo.AssertExpectations(t)
}

func TestReconcileClearsMarkersThatNoLongerHold(t *testing.T) {
	id := uuid.New()
	done := time.Now()
	repo := new(MockProviderRepository)
	// Price list dropped under the threshold after a delete; the other two hold.
	repo.On("Facts", mock.Anything, id).Return(&entity.ProviderFacts{
		HasDescription:        true,
		PhotoCount:            3,
		StaffCount:            1,
		ActivePricedOverrides: 2,
		PriceListCompletedAt:  &done,
		ProfileCompletedAt:    &done,
		StaffCompletedAt:      &done,
	}, nil)
	repo.On("SetCompletion", mock.Anything, id, repository.CompletionPriceList, false).Return(nil)

	got, err := NewReconciler(repo, nil).Reconcile(context.Background(), id)

	assert.NoError(t, err)
	assert.False(t, got.PriceList)
	assert.True(t, got.Profile)
	assert.True(t, got.Staff)
	// No SetCompletion calls for the unchanged markers.
	repo.AssertNumberOfCalls(t, "SetCompletion", 1)
}

func TestReconcileLeavesSettledMarkersAlone(t *testing.T) {
	id := uuid.New()
	done := time.Now()
	repo := new(MockProviderRepository)
	repo.On("Facts", mock.Anything, id).Return(&entity.ProviderFacts{
		HasDescription:        true,
		PhotoCount:            3,
		StaffCount:            1,
		ActivePricedOverrides: 3,
		PriceListCompletedAt:  &done,
		ProfileCompletedAt:    &done,
		StaffCompletedAt:      &done,
	}, nil)

	_, err := NewReconciler(repo, nil).Reconcile(context.Background(), id)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "SetCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
