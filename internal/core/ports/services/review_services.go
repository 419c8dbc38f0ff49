package services

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// ReviewSvcFacade exposes review CRUD plus the approval workflow.
type ReviewSvcFacade interface {
	CreateReview(ctx context.Context, userID string, req dto.CreateReviewRequest) (*domain.Review, error)
	ListPublicReviews(ctx context.Context) ([]domain.Review, error)
	ListReviews(ctx context.Context, params dto.ListReviewsParams) ([]domain.Review, error)
	ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error)
	GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error)
	GetReviewStats(ctx context.Context) (*dto.ReviewStatsResponse, error)
	UpdateReview(ctx context.Context, reviewID string, req dto.UpdateReviewRequest) (*domain.Review, error)
	ApproveReview(ctx context.Context, reviewID string) (*domain.Review, error)
	RejectReview(ctx context.Context, reviewID string) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}
