package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	portservices "github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/handlers"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
)

// --- Mock ReviewService ---
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(ctx context.Context, userID string, req dto.CreateReviewRequest) (*domain.Review, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) ListPublicReviews(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewService) ListReviews(ctx context.Context, params dto.ListReviewsParams) ([]domain.Review, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewService) ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewService) GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) GetReviewStats(ctx context.Context) (*dto.ReviewStatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewStatsResponse), args.Error(1)
}

func (m *MockReviewService) UpdateReview(ctx context.Context, reviewID string, req dto.UpdateReviewRequest) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) ApproveReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) RejectReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, reviewID string) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) TrackEvent(ctx context.Context, req dto.TrackEventRequest) (*domain.AnalyticsEvent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsEvent), args.Error(1)
}

func (m *MockAnalyticsService) GetOverview(ctx context.Context) (*dto.AnalyticsOverviewResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnalyticsOverviewResponse), args.Error(1)
}

func (m *MockAnalyticsService) ListEventsBySession(ctx context.Context, sessionID string) ([]domain.AnalyticsEvent, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalyticsEvent), args.Error(1)
}

// ReviewRoutesTestSuite exercises the full router wiring so the
// public/authenticated split of the review and analytics routes stays pinned.
type ReviewRoutesTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockReviews   *MockReviewService
	mockAnalytics *MockAnalyticsService
	tokenSvc      *services.TokenService
}

func (s *ReviewRoutesTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *ReviewRoutesTestSuite) SetupTest() {
	s.mockReviews = new(MockReviewService)
	s.mockAnalytics = new(MockAnalyticsService)

	cfg := &config.Config{
		IsProduction:       true,
		JWTIssuer:          "portfolio-backend-test",
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
	}
	s.tokenSvc = services.NewTokenService(cfg)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = gin.New()
	handlers.RegisterHandlers(s.router, &portservices.ServiceContainer{
		Token:     s.tokenSvc,
		Review:    s.mockReviews,
		Analytics: s.mockAnalytics,
	}, nil, cfg, logger)
}

func (s *ReviewRoutesTestSuite) get(path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ReviewRoutesTestSuite) accessToken(role domain.UserRole) string {
	pair, err := s.tokenSvc.IssueTokenPair(&domain.User{UserID: uuid.NewString(), Role: role})
	s.Require().NoError(err)
	return pair.AccessToken
}

func (s *ReviewRoutesTestSuite) TestGetReview_PublicWithoutToken() {
	s.mockReviews.On("GetReviewByID", mock.Anything, "r-1").Return(&domain.Review{
		ReviewID: "r-1",
		Rating:   5,
		IsPublic: true,
	}, nil)

	w := s.get("/api/v1/reviews/r-1", "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "r-1")
}

func (s *ReviewRoutesTestSuite) TestGetReview_UnapprovedHiddenFromAnonymous() {
	s.mockReviews.On("GetReviewByID", mock.Anything, "r-2").Return(&domain.Review{
		ReviewID: "r-2",
		UserID:   uuid.NewString(),
		Rating:   4,
		IsPublic: false,
	}, nil)

	w := s.get("/api/v1/reviews/r-2", "")

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *ReviewRoutesTestSuite) TestGetReviewStats_PublicWithoutToken() {
	s.mockReviews.On("GetReviewStats", mock.Anything).Return(&dto.ReviewStatsResponse{}, nil)

	w := s.get("/api/v1/reviews/stats", "")

	s.Equal(http.StatusOK, w.Code)
}

func (s *ReviewRoutesTestSuite) TestListMyReviews_RequiresToken() {
	w := s.get("/api/v1/reviews/my-reviews", "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockReviews.AssertNotCalled(s.T(), "ListReviewsByUser")
}

func (s *ReviewRoutesTestSuite) TestListMyReviews_Authenticated() {
	s.mockReviews.On("ListReviewsByUser", mock.Anything, mock.AnythingOfType("string")).Return([]domain.Review{}, nil)

	w := s.get("/api/v1/reviews/my-reviews", s.accessToken(domain.RoleVisitor))

	s.Equal(http.StatusOK, w.Code)
	s.mockReviews.AssertExpectations(s.T())
}

func (s *ReviewRoutesTestSuite) TestSessionEvents_PathAndAdminGate() {
	s.mockAnalytics.On("ListEventsBySession", mock.Anything, "s-1").Return([]domain.AnalyticsEvent{}, nil)

	s.Equal(http.StatusOK, s.get("/api/v1/analytics/session/s-1", s.accessToken(domain.RoleAdmin)).Code)
	s.Equal(http.StatusForbidden, s.get("/api/v1/analytics/session/s-1", s.accessToken(domain.RoleVisitor)).Code)
	s.Equal(http.StatusNotFound, s.get("/api/v1/analytics/sessions/s-1", s.accessToken(domain.RoleAdmin)).Code)
}

func TestReviewRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRoutesTestSuite))
}
