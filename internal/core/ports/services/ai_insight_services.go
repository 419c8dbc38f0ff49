package services

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// AIInsightSvcFacade exposes AI-usage insight CRUD and summaries.
type AIInsightSvcFacade interface {
	CreateInsight(ctx context.Context, req dto.CreateAIInsightRequest) (*domain.AIInsight, error)
	ListPublicInsights(ctx context.Context, params dto.ListInsightsParams) ([]domain.AIInsight, error)
	ListInsightsByProject(ctx context.Context, projectID string) ([]domain.AIInsight, error)
	ListTopInsights(ctx context.Context, limit int) ([]domain.AIInsight, error)
	GetInsightByID(ctx context.Context, insightID string) (*domain.AIInsight, error)
	GetInsightStats(ctx context.Context) (*dto.AIInsightStatsResponse, error)
	UpdateInsight(ctx context.Context, insightID string, req dto.UpdateAIInsightRequest) (*domain.AIInsight, error)
	DeleteInsight(ctx context.Context, insightID string) error
}
