package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
)

// ReviewRepository implements repositories.ReviewRepositoryFacade on
// PostgreSQL. Reads join the users table to populate the author fields.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

var _ repositories.ReviewRepositoryFacade = (*ReviewRepository)(nil)

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

const reviewSelect = `
	SELECT r.review_id, r.user_id, r.rating, r.comment, r.is_public,
		r.company, r.position, r.avatar_url,
		COALESCE(u.name, ''), COALESCE(u.email, ''),
		r.created_at, r.updated_at
	FROM reviews r
	LEFT JOIN users u ON u.user_id = r.user_id`

func scanReview(row pgx.Row) (*domain.Review, error) {
	var review domain.Review
	err := row.Scan(
		&review.ReviewID, &review.UserID, &review.Rating, &review.Comment, &review.IsPublic,
		&review.Company, &review.Position, &review.AvatarURL,
		&review.AuthorName, &review.AuthorEmail,
		&review.CreatedAt, &review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) SaveReview(ctx context.Context, review domain.Review) error {
	query := `
		INSERT INTO reviews (review_id, user_id, rating, comment, is_public,
			company, position, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`
	_, err := r.pool.Exec(ctx, query,
		review.ReviewID, review.UserID, review.Rating, review.Comment, review.IsPublic,
		review.Company, review.Position, review.AvatarURL,
	)
	if err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	query := reviewSelect + ` WHERE r.review_id = $1`
	return scanReview(r.pool.QueryRow(ctx, query, reviewID))
}

func (r *ReviewRepository) FindReviews(ctx context.Context, filter repositories.ReviewFilter) ([]domain.Review, error) {
	query := reviewSelect + `
		WHERE ($1::boolean IS NULL OR r.is_public = $1)
		ORDER BY r.created_at DESC`
	rows, err := r.pool.Query(ctx, query, filter.IsPublic)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (r *ReviewRepository) FindReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	query := reviewSelect + ` WHERE r.user_id = $1 ORDER BY r.created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews by user: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

func collectReviews(rows pgx.Rows) ([]domain.Review, error) {
	var reviews []domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) UpdateReview(ctx context.Context, review domain.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, is_public = $4, company = $5, position = $6,
			avatar_url = $7, updated_at = NOW()
		WHERE review_id = $1`
	tag, err := r.pool.Exec(ctx, query,
		review.ReviewID, review.Rating, review.Comment, review.IsPublic,
		review.Company, review.Position, review.AvatarURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, reviewID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE review_id = $1`, reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
