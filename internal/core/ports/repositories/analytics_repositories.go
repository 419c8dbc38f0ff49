package repositories

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// EventTypeCount is one row of the per-event-type overview.
type EventTypeCount struct {
	EventType domain.EventType `json:"eventType"`
	Count     int64            `json:"count"`
}

// AnalyticsRepositoryFacade defines persistence for tracked events.
// Events are append-only; there is no update or delete.
type AnalyticsRepositoryFacade interface {
	SaveEvent(ctx context.Context, event domain.AnalyticsEvent) error
	CountByEventType(ctx context.Context) ([]EventTypeCount, error)
	FindEventsBySession(ctx context.Context, sessionID string) ([]domain.AnalyticsEvent, error)
}
