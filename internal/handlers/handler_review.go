package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
)

// ReviewHandler handles review endpoints and the admin approval workflow.
type ReviewHandler struct {
	reviewSvc services.ReviewSvcFacade
}

func NewReviewHandler(reviewSvc services.ReviewSvcFacade) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

// CreateReview godoc
// @Summary      Leave a review
// @Description  The review is attributed to the caller and starts private
// @Description  until an admin approves it.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReviewRequest true "Review payload"
// @Success      201 {object} domain.Review
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	review, err := h.reviewSvc.CreateReview(c.Request.Context(), id.UserID, req)
	if err != nil {
		RespondMappedError(c, err, "Failed to create review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListPublicReviews godoc
// @Summary      List approved reviews
// @Tags         reviews
// @Produce      json
// @Success      200 {array} domain.Review
// @Router       /reviews [get]
func (h *ReviewHandler) ListPublicReviews(c *gin.Context) {
	reviews, err := h.reviewSvc.ListPublicReviews(c.Request.Context())
	if err != nil {
		RespondMappedError(c, err, "Failed to list reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListReviews godoc
// @Summary      List all reviews
// @Tags         reviews
// @Produce      json
// @Param        isPublic query bool false "Filter by visibility"
// @Success      200 {array} domain.Review
// @Failure      403 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reviews/all [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var params dto.ListReviewsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	reviews, err := h.reviewSvc.ListReviews(c.Request.Context(), params)
	if err != nil {
		RespondMappedError(c, err, "Failed to list reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListMyReviews godoc
// @Summary      List the caller's reviews
// @Tags         reviews
// @Produce      json
// @Success      200 {array} domain.Review
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reviews/my-reviews [get]
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	reviews, err := h.reviewSvc.ListReviewsByUser(c.Request.Context(), id.UserID)
	if err != nil {
		RespondMappedError(c, err, "Failed to list reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReviewStats godoc
// @Summary      Review statistics
// @Tags         reviews
// @Produce      json
// @Success      200 {object} dto.ReviewStatsResponse
// @Router       /reviews/stats [get]
func (h *ReviewHandler) GetReviewStats(c *gin.Context) {
	stats, err := h.reviewSvc.GetReviewStats(c.Request.Context())
	if err != nil {
		RespondMappedError(c, err, "Failed to compute review stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetReview godoc
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Review ID"
// @Success      200 {object} domain.Review
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.reviewSvc.GetReviewByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondMappedError(c, err, "Review not found")
		return
	}
	// Anonymous callers get the zero identity and only see approved reviews.
	id, _ := middleware.GetIdentity(c)
	if !review.IsPublic && id.Role != domain.RoleAdmin && id.UserID != review.UserID {
		RespondError(c, http.StatusForbidden, "Insufficient permissions")
		return
	}
	c.JSON(http.StatusOK, review)
}

// UpdateReview godoc
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id      path string                  true "Review ID"
// @Param        request body dto.UpdateReviewRequest true "Fields to update"
// @Success      200 {object} domain.Review
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reviews/{id} [patch]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	review, err := h.reviewSvc.UpdateReview(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		RespondMappedError(c, err, "Review not found")
		return
	}
	c.JSON(http.StatusOK, review)
}

// ApproveReview godoc
// @Summary      Approve a review
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Review ID"
// @Success      200 {object} domain.Review
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reviews/{id}/approve [post]
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	review, err := h.reviewSvc.ApproveReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondMappedError(c, err, "Review not found")
		return
	}
	c.JSON(http.StatusOK, review)
}

// RejectReview godoc
// @Summary      Reject a review
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Review ID"
// @Success      200 {object} domain.Review
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reviews/{id}/reject [post]
func (h *ReviewHandler) RejectReview(c *gin.Context) {
	review, err := h.reviewSvc.RejectReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondMappedError(c, err, "Review not found")
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Review ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.reviewSvc.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		RespondMappedError(c, err, "Review not found")
		return
	}
	c.Status(http.StatusNoContent)
}
