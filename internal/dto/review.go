package dto

import (
	"github.com/shopspring/decimal"
)

// CreateReviewRequest is the authenticated payload for leaving a review.
// The author is always the current user; reviews start private.
type CreateReviewRequest struct {
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required,notblank,max=1000"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	AvatarURL string `json:"avatarUrl" binding:"omitempty,url"`
}

// UpdateReviewRequest allows admin edits; nil fields stay untouched.
type UpdateReviewRequest struct {
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment   *string `json:"comment" binding:"omitempty,max=1000"`
	IsPublic  *bool   `json:"isPublic"`
	Company   *string `json:"company"`
	Position  *string `json:"position"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url"`
}

// ListReviewsParams defines the admin listing filter.
type ListReviewsParams struct {
	IsPublic *bool `form:"isPublic"`
}

// ReviewStatsResponse summarizes the approved reviews.
type ReviewStatsResponse struct {
	Total              int             `json:"total"`
	AvgRating          decimal.Decimal `json:"avgRating"`
	RatingDistribution map[int]int     `json:"ratingDistribution"`
}
