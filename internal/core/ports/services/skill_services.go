package services

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// SkillSvcFacade exposes skill CRUD and the per-category summary.
type SkillSvcFacade interface {
	CreateSkill(ctx context.Context, req dto.CreateSkillRequest) (*domain.Skill, error)
	ListSkills(ctx context.Context, params dto.ListSkillsParams) ([]domain.Skill, error)
	ListSkillsByCategory(ctx context.Context, category domain.SkillCategory) ([]domain.Skill, error)
	ListSkillsByMinLevel(ctx context.Context, minLevel int) ([]domain.Skill, error)
	GetSkillByID(ctx context.Context, skillID string) (*domain.Skill, error)
	GetSkillStats(ctx context.Context) (*dto.SkillStatsResponse, error)
	UpdateSkill(ctx context.Context, skillID string, req dto.UpdateSkillRequest) (*domain.Skill, error)
	DeleteSkill(ctx context.Context, skillID string) error
}
