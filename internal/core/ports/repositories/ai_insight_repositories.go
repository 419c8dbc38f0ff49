package repositories

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// InsightFilter narrows insight listings. Nil fields mean "no filter".
type InsightFilter struct {
	Type     *domain.InsightType
	IsPublic *bool
}

// AIInsightRepositoryFacade defines persistence operations for AI insights.
type AIInsightRepositoryFacade interface {
	SaveInsight(ctx context.Context, insight domain.AIInsight) error
	FindInsightByID(ctx context.Context, insightID string) (*domain.AIInsight, error)
	FindInsights(ctx context.Context, filter InsightFilter) ([]domain.AIInsight, error)
	FindInsightsByProject(ctx context.Context, projectID string) ([]domain.AIInsight, error)
	// FindTopInsights returns the public insights with the highest impact.
	FindTopInsights(ctx context.Context, limit int) ([]domain.AIInsight, error)
	UpdateInsight(ctx context.Context, insight domain.AIInsight) error
	DeleteInsight(ctx context.Context, insightID string) error
}
