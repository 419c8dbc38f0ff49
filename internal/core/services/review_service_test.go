package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// --- Mock ReviewRepository ---
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) SaveReview(ctx context.Context, review domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) FindReviews(ctx context.Context, filter repositories.ReviewFilter) ([]domain.Review, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) FindReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateReview(ctx context.Context, review domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, reviewID string) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func TestReviewService_CreateReview_StartsPrivate(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := services.NewReviewService(repo)

	repo.On("SaveReview", mock.Anything, mock.MatchedBy(func(r domain.Review) bool {
		return !r.IsPublic && r.UserID == "user-1" && r.Rating == 5
	})).Return(nil)

	review, err := svc.CreateReview(context.Background(), "user-1", dto.CreateReviewRequest{
		Rating:  5,
		Comment: "Great work",
	})

	require.NoError(t, err)
	assert.False(t, review.IsPublic)
	repo.AssertExpectations(t)
}

func TestReviewService_GetReviewStats(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := services.NewReviewService(repo)

	public := true
	repo.On("FindReviews", mock.Anything, repositories.ReviewFilter{IsPublic: &public}).Return([]domain.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 4},
	}, nil)

	stats, err := svc.GetReviewStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	// (5+4+4)/3 = 4.333... rounded to one decimal
	assert.True(t, stats.AvgRating.Equal(decimal.RequireFromString("4.3")), "got %s", stats.AvgRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 2, 5: 1}, stats.RatingDistribution)
}

func TestReviewService_GetReviewStats_Empty(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := services.NewReviewService(repo)

	public := true
	repo.On("FindReviews", mock.Anything, repositories.ReviewFilter{IsPublic: &public}).Return([]domain.Review{}, nil)

	stats, err := svc.GetReviewStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.True(t, stats.AvgRating.IsZero())
}

func TestReviewService_ApproveAndReject(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := services.NewReviewService(repo)

	stored := &domain.Review{ReviewID: "r-1", IsPublic: false}
	repo.On("FindReviewByID", mock.Anything, "r-1").Return(stored, nil)
	repo.On("UpdateReview", mock.Anything, mock.MatchedBy(func(r domain.Review) bool {
		return r.ReviewID == "r-1" && r.IsPublic
	})).Return(nil).Once()

	review, err := svc.ApproveReview(context.Background(), "r-1")
	require.NoError(t, err)
	assert.True(t, review.IsPublic)

	repo.On("UpdateReview", mock.Anything, mock.MatchedBy(func(r domain.Review) bool {
		return r.ReviewID == "r-1" && !r.IsPublic
	})).Return(nil).Once()

	review, err = svc.RejectReview(context.Background(), "r-1")
	require.NoError(t, err)
	assert.False(t, review.IsPublic)
	repo.AssertExpectations(t)
}
