package dto

import (
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
)

// TrackEventRequest is the public payload for POST /analytics/track.
type TrackEventRequest struct {
	EventType domain.EventType `json:"eventType" binding:"required,oneof=page_view project_view project_like skill_view review_view contact_form download_cv external_link"`
	Page      string           `json:"page"`
	Referrer  string           `json:"referrer"`
	UserAgent string           `json:"userAgent"`
	IP        string           `json:"ip"`
	Country   string           `json:"country"`
	City      string           `json:"city"`
	Device    string           `json:"device" binding:"omitempty,oneof=mobile tablet desktop"`
	Browser   string           `json:"browser"`
	OS        string           `json:"os"`
	Metadata  map[string]any   `json:"metadata"`
	SessionID string           `json:"sessionId"`
	Duration  int              `json:"duration" binding:"omitempty,min=0"`
}

// AnalyticsOverviewResponse is the admin per-event-type summary.
type AnalyticsOverviewResponse struct {
	TotalEvents int64                         `json:"totalEvents"`
	ByEventType []repositories.EventTypeCount `json:"byEventType"`
}
