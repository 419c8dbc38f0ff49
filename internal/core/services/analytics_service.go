package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/utils"
)

// AnalyticsService persists tracked events and mirrors them to PostHog when
// an API key is configured.
type AnalyticsService struct {
	analyticsRepo repositories.AnalyticsRepositoryFacade
	posthogClient *utils.PosthogClientWrapper
}

var _ services.AnalyticsSvcFacade = (*AnalyticsService)(nil)

func NewAnalyticsService(analyticsRepo repositories.AnalyticsRepositoryFacade, posthogClient *utils.PosthogClientWrapper) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo, posthogClient: posthogClient}
}

// TrackEvent stores the event. Forwarding to PostHog is fire-and-forget; a
// sink failure never fails the track call.
func (s *AnalyticsService) TrackEvent(ctx context.Context, req dto.TrackEventRequest) (*domain.AnalyticsEvent, error) {
	event := domain.AnalyticsEvent{
		EventID:   uuid.NewString(),
		EventType: req.EventType,
		Page:      req.Page,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
		IP:        req.IP,
		Country:   req.Country,
		City:      req.City,
		Device:    req.Device,
		Browser:   req.Browser,
		OS:        req.OS,
		Metadata:  req.Metadata,
		SessionID: req.SessionID,
		Duration:  req.Duration,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.analyticsRepo.SaveEvent(ctx, event); err != nil {
		return nil, err
	}

	if s.posthogClient.IsInitialized() {
		distinctID := event.SessionID
		if distinctID == "" {
			distinctID = event.EventID
		}
		s.posthogClient.Enqueue(distinctID, string(event.EventType), map[string]any{
			"page":    event.Page,
			"device":  event.Device,
			"country": event.Country,
		})
	}

	middleware.GetLoggerFromCtx(ctx).Debug("event tracked", "eventType", event.EventType, "sessionID", event.SessionID)
	return &event, nil
}

// GetOverview returns per-event-type counts plus the grand total.
func (s *AnalyticsService) GetOverview(ctx context.Context) (*dto.AnalyticsOverviewResponse, error) {
	counts, err := s.analyticsRepo.CountByEventType(ctx)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, c := range counts {
		total += c.Count
	}
	return &dto.AnalyticsOverviewResponse{TotalEvents: total, ByEventType: counts}, nil
}

func (s *AnalyticsService) ListEventsBySession(ctx context.Context, sessionID string) ([]domain.AnalyticsEvent, error) {
	return s.analyticsRepo.FindEventsBySession(ctx, sessionID)
}
