package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// AnalyticsHandler handles event tracking and admin summaries.
type AnalyticsHandler struct {
	analyticsSvc services.AnalyticsSvcFacade
}

func NewAnalyticsHandler(analyticsSvc services.AnalyticsSvcFacade) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// TrackEvent godoc
// @Summary      Track a site interaction
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        request body dto.TrackEventRequest true "Event payload"
// @Success      201 {object} domain.AnalyticsEvent
// @Failure      400 {object} dto.ErrorResponse
// @Router       /analytics/track [post]
func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	var req dto.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.IP == "" {
		req.IP = c.ClientIP()
	}
	event, err := h.analyticsSvc.TrackEvent(c.Request.Context(), req)
	if err != nil {
		RespondMappedError(c, err, "Failed to track event")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetOverview godoc
// @Summary      Event counts per type
// @Tags         analytics
// @Produce      json
// @Success      200 {object} dto.AnalyticsOverviewResponse
// @Failure      403 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/overview [get]
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	overview, err := h.analyticsSvc.GetOverview(c.Request.Context())
	if err != nil {
		RespondMappedError(c, err, "Failed to compute analytics overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// ListSessionEvents godoc
// @Summary      List events of a session
// @Tags         analytics
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {array} domain.AnalyticsEvent
// @Failure      403 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/session/{sessionId} [get]
func (h *AnalyticsHandler) ListSessionEvents(c *gin.Context) {
	events, err := h.analyticsSvc.ListEventsBySession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		RespondMappedError(c, err, "Failed to list session events")
		return
	}
	c.JSON(http.StatusOK, events)
}
