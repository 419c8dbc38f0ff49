package services

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// AnalyticsSvcFacade persists tracked events and serves admin summaries.
type AnalyticsSvcFacade interface {
	// TrackEvent stores the event and, when configured, forwards it to the
	// external product-analytics sink.
	TrackEvent(ctx context.Context, req dto.TrackEventRequest) (*domain.AnalyticsEvent, error)
	GetOverview(ctx context.Context) (*dto.AnalyticsOverviewResponse, error)
	ListEventsBySession(ctx context.Context, sessionID string) ([]domain.AnalyticsEvent, error)
}
