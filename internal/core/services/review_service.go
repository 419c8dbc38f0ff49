package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
)

// ReviewService implements review CRUD plus the admin approval workflow.
// Reviews start private and appear on the public site only after approval.
type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryFacade
}

var _ services.ReviewSvcFacade = (*ReviewService)(nil)

func NewReviewService(reviewRepo repositories.ReviewRepositoryFacade) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

func (s *ReviewService) CreateReview(ctx context.Context, userID string, req dto.CreateReviewRequest) (*domain.Review, error) {
	review := domain.Review{
		ReviewID:  uuid.NewString(),
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		IsPublic:  false,
		Company:   req.Company,
		Position:  req.Position,
		AvatarURL: req.AvatarURL,
	}
	if err := s.reviewRepo.SaveReview(ctx, review); err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("review created", "reviewID", review.ReviewID, "userID", userID)
	return &review, nil
}

func (s *ReviewService) ListPublicReviews(ctx context.Context) ([]domain.Review, error) {
	public := true
	return s.reviewRepo.FindReviews(ctx, repositories.ReviewFilter{IsPublic: &public})
}

func (s *ReviewService) ListReviews(ctx context.Context, params dto.ListReviewsParams) ([]domain.Review, error) {
	return s.reviewRepo.FindReviews(ctx, repositories.ReviewFilter{IsPublic: params.IsPublic})
}

func (s *ReviewService) ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.reviewRepo.FindReviewsByUser(ctx, userID)
}

func (s *ReviewService) GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.reviewRepo.FindReviewByID(ctx, reviewID)
}

// GetReviewStats summarizes the approved reviews: total, average rating to
// one decimal, and the per-star distribution.
func (s *ReviewService) GetReviewStats(ctx context.Context) (*dto.ReviewStatsResponse, error) {
	public := true
	reviews, err := s.reviewRepo.FindReviews(ctx, repositories.ReviewFilter{IsPublic: &public})
	if err != nil {
		return nil, err
	}

	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	sum := decimal.Zero
	for _, review := range reviews {
		distribution[review.Rating]++
		sum = sum.Add(decimal.NewFromInt(int64(review.Rating)))
	}

	avg := decimal.Zero
	if len(reviews) > 0 {
		avg = sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(1)
	}
	return &dto.ReviewStatsResponse{
		Total:              len(reviews),
		AvgRating:          avg,
		RatingDistribution: distribution,
	}, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, reviewID string, req dto.UpdateReviewRequest) (*domain.Review, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.IsPublic != nil {
		review.IsPublic = *req.IsPublic
	}
	if req.Company != nil {
		review.Company = *req.Company
	}
	if req.Position != nil {
		review.Position = *req.Position
	}
	if req.AvatarURL != nil {
		review.AvatarURL = *req.AvatarURL
	}

	if err := s.reviewRepo.UpdateReview(ctx, *review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) setVisibility(ctx context.Context, reviewID string, public bool) (*domain.Review, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	review.IsPublic = public
	if err := s.reviewRepo.UpdateReview(ctx, *review); err != nil {
		return nil, err
	}
	return review, nil
}

// ApproveReview makes the review visible on the public site.
func (s *ReviewService) ApproveReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.setVisibility(ctx, reviewID, true)
}

// RejectReview hides the review from the public site without deleting it.
func (s *ReviewService) RejectReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.setVisibility(ctx, reviewID, false)
}

func (s *ReviewService) DeleteReview(ctx context.Context, reviewID string) error {
	if err := s.reviewRepo.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("review deleted", "reviewID", reviewID)
	return nil
}
