package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
)

// ProjectRepository implements repositories.ProjectRepositoryFacade on
// PostgreSQL. Media attachments and the AI block are stored as JSONB;
// technologies as text[].
type ProjectRepository struct {
	pool *pgxpool.Pool
}

var _ repositories.ProjectRepositoryFacade = (*ProjectRepository)(nil)

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `project_id, title, description, long_description, technologies,
	images, videos, github_url, live_url, category, featured, ai_generated,
	views, likes, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		project   domain.Project
		imagesRaw []byte
		videosRaw []byte
		aiRaw     []byte
	)
	err := row.Scan(
		&project.ProjectID, &project.Title, &project.Description, &project.LongDescription,
		&project.Technologies, &imagesRaw, &videosRaw,
		&project.GithubURL, &project.LiveURL, &project.Category, &project.Featured,
		&aiRaw, &project.Stats.Views, &project.Stats.Likes,
		&project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	if err := json.Unmarshal(imagesRaw, &project.Images); err != nil {
		return nil, fmt.Errorf("failed to decode project images: %w", err)
	}
	if err := json.Unmarshal(videosRaw, &project.Videos); err != nil {
		return nil, fmt.Errorf("failed to decode project videos: %w", err)
	}
	if err := json.Unmarshal(aiRaw, &project.AIGenerated); err != nil {
		return nil, fmt.Errorf("failed to decode project ai block: %w", err)
	}
	return &project, nil
}

func marshalProjectJSON(project domain.Project) (images, videos, ai []byte, err error) {
	if project.Images == nil {
		project.Images = []domain.MediaFile{}
	}
	if project.Videos == nil {
		project.Videos = []domain.MediaFile{}
	}
	if images, err = json.Marshal(project.Images); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode project images: %w", err)
	}
	if videos, err = json.Marshal(project.Videos); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode project videos: %w", err)
	}
	if ai, err = json.Marshal(project.AIGenerated); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode project ai block: %w", err)
	}
	return images, videos, ai, nil
}

func (r *ProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	images, videos, ai, err := marshalProjectJSON(project)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO projects (project_id, title, description, long_description, technologies,
			images, videos, github_url, live_url, category, featured, ai_generated,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())`
	_, err = r.pool.Exec(ctx, query,
		project.ProjectID, project.Title, project.Description, project.LongDescription,
		project.Technologies, images, videos, project.GithubURL, project.LiveURL,
		project.Category, project.Featured, ai,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE project_id = $1`, projectColumns)
	return scanProject(r.pool.QueryRow(ctx, query, projectID))
}

func (r *ProjectRepository) FindProjects(ctx context.Context, filter repositories.ProjectFilter) ([]domain.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE ($1::text IS NULL OR category = $1)
		  AND ($2::boolean IS NULL OR featured = $2)
		ORDER BY featured DESC, created_at DESC`, projectColumns)
	rows, err := r.pool.Query(ctx, query, filter.Category, filter.Featured)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *ProjectRepository) SearchProjects(ctx context.Context, query string) ([]domain.Project, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE title ILIKE '%%' || $1 || '%%' OR description ILIKE '%%' || $1 || '%%'
		ORDER BY created_at DESC`, projectColumns)
	rows, err := r.pool.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

func collectProjects(rows pgx.Rows) ([]domain.Project, error) {
	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	images, videos, ai, err := marshalProjectJSON(project)
	if err != nil {
		return err
	}
	query := `
		UPDATE projects
		SET title = $2, description = $3, long_description = $4, technologies = $5,
			images = $6, videos = $7, github_url = $8, live_url = $9, category = $10,
			featured = $11, ai_generated = $12, updated_at = NOW()
		WHERE project_id = $1`
	tag, err := r.pool.Exec(ctx, query,
		project.ProjectID, project.Title, project.Description, project.LongDescription,
		project.Technologies, images, videos, project.GithubURL, project.LiveURL,
		project.Category, project.Featured, ai,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) IncrementViews(ctx context.Context, projectID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE projects SET views = views + 1 WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) IncrementLikes(ctx context.Context, projectID string) (*domain.Project, error) {
	query := fmt.Sprintf(`
		UPDATE projects SET likes = likes + 1 WHERE project_id = $1
		RETURNING %s`, projectColumns)
	return scanProject(r.pool.QueryRow(ctx, query, projectID))
}
