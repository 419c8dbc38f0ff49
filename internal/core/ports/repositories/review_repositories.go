package repositories

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// ReviewFilter narrows review listings. Nil means "no filter".
type ReviewFilter struct {
	IsPublic *bool
}

// ReviewRepositoryFacade defines persistence operations for reviews.
// Read operations join the author's name and email from the users table.
type ReviewRepositoryFacade interface {
	SaveReview(ctx context.Context, review domain.Review) error
	FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error)
	FindReviews(ctx context.Context, filter ReviewFilter) ([]domain.Review, error)
	FindReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error)
	UpdateReview(ctx context.Context, review domain.Review) error
	DeleteReview(ctx context.Context, reviewID string) error
}
