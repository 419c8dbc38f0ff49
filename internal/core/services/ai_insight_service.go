package services

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
)

// AIInsightService implements CRUD and summaries for AI-usage insights.
type AIInsightService struct {
	insightRepo repositories.AIInsightRepositoryFacade
}

var _ services.AIInsightSvcFacade = (*AIInsightService)(nil)

func NewAIInsightService(insightRepo repositories.AIInsightRepositoryFacade) *AIInsightService {
	return &AIInsightService{insightRepo: insightRepo}
}

func (s *AIInsightService) CreateInsight(ctx context.Context, req dto.CreateAIInsightRequest) (*domain.AIInsight, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	insight := domain.AIInsight{
		InsightID:        uuid.NewString(),
		ProjectID:        req.ProjectID,
		Title:            req.Title,
		Description:      req.Description,
		Type:             req.Type,
		AITools:          req.AITools,
		ImpactPercentage: req.ImpactPercentage,
		CodeSnippet:      req.CodeSnippet,
		BeforeCode:       req.BeforeCode,
		AfterCode:        req.AfterCode,
		TimeSaved:        req.TimeSaved,
		Tags:             req.Tags,
		IsPublic:         isPublic,
	}
	if req.Metrics != nil {
		insight.Metrics = domain.InsightMetrics{
			LinesOfCode: req.Metrics.LinesOfCode,
			Complexity:  req.Metrics.Complexity,
			Performance: req.Metrics.Performance,
		}
	}

	if err := s.insightRepo.SaveInsight(ctx, insight); err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("insight created", "insightID", insight.InsightID)
	return &insight, nil
}

func (s *AIInsightService) ListPublicInsights(ctx context.Context, params dto.ListInsightsParams) ([]domain.AIInsight, error) {
	public := true
	filter := repositories.InsightFilter{IsPublic: &public}
	if params.Type != "" {
		insightType := domain.InsightType(params.Type)
		filter.Type = &insightType
	}
	return s.insightRepo.FindInsights(ctx, filter)
}

func (s *AIInsightService) ListInsightsByProject(ctx context.Context, projectID string) ([]domain.AIInsight, error) {
	return s.insightRepo.FindInsightsByProject(ctx, projectID)
}

func (s *AIInsightService) ListTopInsights(ctx context.Context, limit int) ([]domain.AIInsight, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	return s.insightRepo.FindTopInsights(ctx, limit)
}

func (s *AIInsightService) GetInsightByID(ctx context.Context, insightID string) (*domain.AIInsight, error) {
	return s.insightRepo.FindInsightByID(ctx, insightID)
}

// GetInsightStats aggregates the public insights: count, average impact
// percentage to one decimal, and total minutes saved.
func (s *AIInsightService) GetInsightStats(ctx context.Context) (*dto.AIInsightStatsResponse, error) {
	public := true
	insights, err := s.insightRepo.FindInsights(ctx, repositories.InsightFilter{IsPublic: &public})
	if err != nil {
		return nil, err
	}

	stats := &dto.AIInsightStatsResponse{Total: len(insights)}
	if len(insights) == 0 {
		return stats, nil
	}
	var impactSum int
	for _, insight := range insights {
		impactSum += insight.ImpactPercentage
		stats.TotalTimeSaved += insight.TimeSaved
	}
	stats.AvgImpact = math.Round(float64(impactSum)/float64(len(insights))*10) / 10
	return stats, nil
}

func (s *AIInsightService) UpdateInsight(ctx context.Context, insightID string, req dto.UpdateAIInsightRequest) (*domain.AIInsight, error) {
	insight, err := s.insightRepo.FindInsightByID(ctx, insightID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		insight.Title = *req.Title
	}
	if req.Description != nil {
		insight.Description = *req.Description
	}
	if req.Type != nil {
		insight.Type = *req.Type
	}
	if req.AITools != nil {
		insight.AITools = req.AITools
	}
	if req.ImpactPercentage != nil {
		insight.ImpactPercentage = *req.ImpactPercentage
	}
	if req.CodeSnippet != nil {
		insight.CodeSnippet = *req.CodeSnippet
	}
	if req.BeforeCode != nil {
		insight.BeforeCode = *req.BeforeCode
	}
	if req.AfterCode != nil {
		insight.AfterCode = *req.AfterCode
	}
	if req.TimeSaved != nil {
		insight.TimeSaved = *req.TimeSaved
	}
	if req.Tags != nil {
		insight.Tags = req.Tags
	}
	if req.IsPublic != nil {
		insight.IsPublic = *req.IsPublic
	}
	if req.Metrics != nil {
		insight.Metrics = domain.InsightMetrics{
			LinesOfCode: req.Metrics.LinesOfCode,
			Complexity:  req.Metrics.Complexity,
			Performance: req.Metrics.Performance,
		}
	}

	if err := s.insightRepo.UpdateInsight(ctx, *insight); err != nil {
		return nil, err
	}
	return insight, nil
}

func (s *AIInsightService) DeleteInsight(ctx context.Context, insightID string) error {
	if err := s.insightRepo.DeleteInsight(ctx, insightID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("insight deleted", "insightID", insightID)
	return nil
}
