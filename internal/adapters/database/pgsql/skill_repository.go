package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
)

// SkillRepository implements repositories.SkillRepositoryFacade on PostgreSQL.
type SkillRepository struct {
	pool *pgxpool.Pool
}

var _ repositories.SkillRepositoryFacade = (*SkillRepository)(nil)

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

const skillColumns = `skill_id, name, category, level, icon, years_experience, description,
	related_projects, is_active, created_at, updated_at`

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var skill domain.Skill
	err := row.Scan(
		&skill.SkillID, &skill.Name, &skill.Category, &skill.Level, &skill.Icon,
		&skill.YearsExperience, &skill.Description, &skill.RelatedProjects,
		&skill.IsActive, &skill.CreatedAt, &skill.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan skill: %w", err)
	}
	return &skill, nil
}

func (r *SkillRepository) SaveSkill(ctx context.Context, skill domain.Skill) error {
	if skill.RelatedProjects == nil {
		skill.RelatedProjects = []string{}
	}
	query := `
		INSERT INTO skills (skill_id, name, category, level, icon, years_experience,
			description, related_projects, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`
	_, err := r.pool.Exec(ctx, query,
		skill.SkillID, skill.Name, skill.Category, skill.Level, skill.Icon,
		skill.YearsExperience, skill.Description, skill.RelatedProjects, skill.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to save skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) FindSkillByID(ctx context.Context, skillID string) (*domain.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE skill_id = $1`, skillColumns)
	return scanSkill(r.pool.QueryRow(ctx, query, skillID))
}

func (r *SkillRepository) FindSkills(ctx context.Context, filter repositories.SkillFilter) ([]domain.Skill, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM skills
		WHERE ($1::text IS NULL OR category = $1)
		  AND ($2::boolean IS NULL OR is_active = $2)
		  AND ($3::int IS NULL OR level >= $3)
		ORDER BY level DESC, name ASC`, skillColumns)
	rows, err := r.pool.Query(ctx, query, filter.Category, filter.IsActive, filter.MinLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *skill)
	}
	return skills, rows.Err()
}

func (r *SkillRepository) UpdateSkill(ctx context.Context, skill domain.Skill) error {
	if skill.RelatedProjects == nil {
		skill.RelatedProjects = []string{}
	}
	query := `
		UPDATE skills
		SET name = $2, category = $3, level = $4, icon = $5, years_experience = $6,
			description = $7, related_projects = $8, is_active = $9, updated_at = NOW()
		WHERE skill_id = $1`
	tag, err := r.pool.Exec(ctx, query,
		skill.SkillID, skill.Name, skill.Category, skill.Level, skill.Icon,
		skill.YearsExperience, skill.Description, skill.RelatedProjects, skill.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SkillRepository) DeleteSkill(ctx context.Context, skillID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE skill_id = $1`, skillID)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
