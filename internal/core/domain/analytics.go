package domain

import "time"

// EventType enumerates the trackable site interactions.
type EventType string

const (
	EventPageView     EventType = "page_view"
	EventProjectView  EventType = "project_view"
	EventProjectLike  EventType = "project_like"
	EventSkillView    EventType = "skill_view"
	EventReviewView   EventType = "review_view"
	EventContactForm  EventType = "contact_form"
	EventDownloadCV   EventType = "download_cv"
	EventExternalLink EventType = "external_link"
)

// AnalyticsEvent is one tracked interaction. Events are append-only.
type AnalyticsEvent struct {
	EventID   string         `json:"eventID"`
	EventType EventType      `json:"eventType"`
	Page      string         `json:"page,omitempty"`
	Referrer  string         `json:"referrer,omitempty"`
	UserAgent string         `json:"userAgent,omitempty"`
	IP        string         `json:"ip,omitempty"`
	Country   string         `json:"country,omitempty"`
	City      string         `json:"city,omitempty"`
	Device    string         `json:"device,omitempty"`
	Browser   string         `json:"browser,omitempty"`
	OS        string         `json:"os,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	Duration  int            `json:"duration,omitempty"` // seconds, page views only
	CreatedAt time.Time      `json:"createdAt"`
}
