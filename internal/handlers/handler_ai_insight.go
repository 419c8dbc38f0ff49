package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// AIInsightHandler handles AI-usage insight endpoints.
type AIInsightHandler struct {
	insightSvc services.AIInsightSvcFacade
}

func NewAIInsightHandler(insightSvc services.AIInsightSvcFacade) *AIInsightHandler {
	return &AIInsightHandler{insightSvc: insightSvc}
}

// CreateInsight godoc
// @Summary      Document a case of AI-assisted development
// @Tags         ai-insights
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAIInsightRequest true "Insight payload"
// @Success      201 {object} domain.AIInsight
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /ai-insights [post]
func (h *AIInsightHandler) CreateInsight(c *gin.Context) {
	var req dto.CreateAIInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	insight, err := h.insightSvc.CreateInsight(c.Request.Context(), req)
	if err != nil {
		RespondMappedError(c, err, "Failed to create insight")
		return
	}
	c.JSON(http.StatusCreated, insight)
}

// ListInsights godoc
// @Summary      List public insights
// @Tags         ai-insights
// @Produce      json
// @Param        type query string false "Filter by type" Enums(code_generation, code_review, debugging, optimization, documentation, testing, architecture, other)
// @Success      200 {array} domain.AIInsight
// @Router       /ai-insights [get]
func (h *AIInsightHandler) ListInsights(c *gin.Context) {
	var params dto.ListInsightsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	insights, err := h.insightSvc.ListPublicInsights(c.Request.Context(), params)
	if err != nil {
		RespondMappedError(c, err, "Failed to list insights")
		return
	}
	c.JSON(http.StatusOK, insights)
}

// ListInsightsByProject godoc
// @Summary      List insights linked to a project
// @Tags         ai-insights
// @Produce      json
// @Param        projectId path string true "Project ID"
// @Success      200 {array} domain.AIInsight
// @Router       /ai-insights/project/{projectId} [get]
func (h *AIInsightHandler) ListInsightsByProject(c *gin.Context) {
	insights, err := h.insightSvc.ListInsightsByProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		RespondMappedError(c, err, "Failed to list insights")
		return
	}
	c.JSON(http.StatusOK, insights)
}

// ListTopInsights godoc
// @Summary      List the highest-impact public insights
// @Tags         ai-insights
// @Produce      json
// @Param        limit query int false "Number of insights" default(5)
// @Success      200 {array} domain.AIInsight
// @Router       /ai-insights/top [get]
func (h *AIInsightHandler) ListTopInsights(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	insights, err := h.insightSvc.ListTopInsights(c.Request.Context(), limit)
	if err != nil {
		RespondMappedError(c, err, "Failed to list insights")
		return
	}
	c.JSON(http.StatusOK, insights)
}

// GetInsightStats godoc
// @Summary      Insight statistics
// @Tags         ai-insights
// @Produce      json
// @Success      200 {object} dto.AIInsightStatsResponse
// @Router       /ai-insights/stats [get]
func (h *AIInsightHandler) GetInsightStats(c *gin.Context) {
	stats, err := h.insightSvc.GetInsightStats(c.Request.Context())
	if err != nil {
		RespondMappedError(c, err, "Failed to compute insight stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetInsight godoc
// @Summary      Get an insight
// @Tags         ai-insights
// @Produce      json
// @Param        id path string true "Insight ID"
// @Success      200 {object} domain.AIInsight
// @Failure      404 {object} dto.ErrorResponse
// @Router       /ai-insights/{id} [get]
func (h *AIInsightHandler) GetInsight(c *gin.Context) {
	insight, err := h.insightSvc.GetInsightByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondMappedError(c, err, "Insight not found")
		return
	}
	c.JSON(http.StatusOK, insight)
}

// UpdateInsight godoc
// @Summary      Update an insight
// @Tags         ai-insights
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Insight ID"
// @Param        request body dto.UpdateAIInsightRequest true "Fields to update"
// @Success      200 {object} domain.AIInsight
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /ai-insights/{id} [patch]
func (h *AIInsightHandler) UpdateInsight(c *gin.Context) {
	var req dto.UpdateAIInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	insight, err := h.insightSvc.UpdateInsight(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		RespondMappedError(c, err, "Insight not found")
		return
	}
	c.JSON(http.StatusOK, insight)
}

// DeleteInsight godoc
// @Summary      Delete an insight
// @Tags         ai-insights
// @Produce      json
// @Param        id path string true "Insight ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /ai-insights/{id} [delete]
func (h *AIInsightHandler) DeleteInsight(c *gin.Context) {
	if err := h.insightSvc.DeleteInsight(c.Request.Context(), c.Param("id")); err != nil {
		RespondMappedError(c, err, "Insight not found")
		return
	}
	c.Status(http.StatusNoContent)
}
