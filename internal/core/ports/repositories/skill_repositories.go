package repositories

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// SkillFilter narrows skill listings. Nil fields mean "no filter".
type SkillFilter struct {
	Category *domain.SkillCategory
	IsActive *bool
	MinLevel *int
}

// SkillRepositoryFacade defines persistence operations for skills.
type SkillRepositoryFacade interface {
	SaveSkill(ctx context.Context, skill domain.Skill) error
	FindSkillByID(ctx context.Context, skillID string) (*domain.Skill, error)
	FindSkills(ctx context.Context, filter SkillFilter) ([]domain.Skill, error)
	UpdateSkill(ctx context.Context, skill domain.Skill) error
	DeleteSkill(ctx context.Context, skillID string) error
}
