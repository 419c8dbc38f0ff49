package services

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
)

// SkillService implements skill CRUD and the per-category summary.
type SkillService struct {
	skillRepo repositories.SkillRepositoryFacade
}

var _ services.SkillSvcFacade = (*SkillService)(nil)

func NewSkillService(skillRepo repositories.SkillRepositoryFacade) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

func (s *SkillService) CreateSkill(ctx context.Context, req dto.CreateSkillRequest) (*domain.Skill, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	skill := domain.Skill{
		SkillID:         uuid.NewString(),
		Name:            req.Name,
		Category:        req.Category,
		Level:           req.Level,
		Icon:            req.Icon,
		YearsExperience: req.YearsExperience,
		Description:     req.Description,
		RelatedProjects: req.RelatedProjects,
		IsActive:        isActive,
	}
	if err := s.skillRepo.SaveSkill(ctx, skill); err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("skill created", "skillID", skill.SkillID)
	return &skill, nil
}

func (s *SkillService) ListSkills(ctx context.Context, params dto.ListSkillsParams) ([]domain.Skill, error) {
	filter := repositories.SkillFilter{IsActive: params.IsActive}
	if params.Category != "" {
		category := domain.SkillCategory(params.Category)
		filter.Category = &category
	}
	return s.skillRepo.FindSkills(ctx, filter)
}

func (s *SkillService) ListSkillsByCategory(ctx context.Context, category domain.SkillCategory) ([]domain.Skill, error) {
	return s.skillRepo.FindSkills(ctx, repositories.SkillFilter{Category: &category})
}

func (s *SkillService) ListSkillsByMinLevel(ctx context.Context, minLevel int) ([]domain.Skill, error) {
	return s.skillRepo.FindSkills(ctx, repositories.SkillFilter{MinLevel: &minLevel})
}

func (s *SkillService) GetSkillByID(ctx context.Context, skillID string) (*domain.Skill, error) {
	return s.skillRepo.FindSkillByID(ctx, skillID)
}

// GetSkillStats aggregates the active skills into per-category counts and
// average levels, rounded to one decimal.
func (s *SkillService) GetSkillStats(ctx context.Context) (*dto.SkillStatsResponse, error) {
	active := true
	skills, err := s.skillRepo.FindSkills(ctx, repositories.SkillFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}

	type acc struct {
		count int
		sum   int
	}
	byCategory := make(map[domain.SkillCategory]*acc)
	for _, skill := range skills {
		a, ok := byCategory[skill.Category]
		if !ok {
			a = &acc{}
			byCategory[skill.Category] = a
		}
		a.count++
		a.sum += skill.Level
	}

	stats := &dto.SkillStatsResponse{Total: len(skills)}
	for category, a := range byCategory {
		avg := math.Round(float64(a.sum)/float64(a.count)*10) / 10
		stats.Categories = append(stats.Categories, dto.SkillCategoryStats{
			Category: category,
			Count:    a.count,
			AvgLevel: avg,
		})
	}
	sort.Slice(stats.Categories, func(i, j int) bool {
		return stats.Categories[i].Category < stats.Categories[j].Category
	})
	return stats, nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, skillID string, req dto.UpdateSkillRequest) (*domain.Skill, error) {
	skill, err := s.skillRepo.FindSkillByID(ctx, skillID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}
	if req.Icon != nil {
		skill.Icon = *req.Icon
	}
	if req.YearsExperience != nil {
		skill.YearsExperience = *req.YearsExperience
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}
	if req.RelatedProjects != nil {
		skill.RelatedProjects = req.RelatedProjects
	}
	if req.IsActive != nil {
		skill.IsActive = *req.IsActive
	}

	if err := s.skillRepo.UpdateSkill(ctx, *skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, skillID string) error {
	if err := s.skillRepo.DeleteSkill(ctx, skillID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("skill deleted", "skillID", skillID)
	return nil
}
