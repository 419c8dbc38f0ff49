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

// AIInsightRepository implements repositories.AIInsightRepositoryFacade on
// PostgreSQL. Tool and tag lists are text[]; metrics is JSONB.
type AIInsightRepository struct {
	pool *pgxpool.Pool
}

var _ repositories.AIInsightRepositoryFacade = (*AIInsightRepository)(nil)

func NewAIInsightRepository(pool *pgxpool.Pool) *AIInsightRepository {
	return &AIInsightRepository{pool: pool}
}

const insightColumns = `insight_id, COALESCE(project_id, ''), title, description, type, ai_tools,
	impact_percentage, code_snippet, before_code, after_code, time_saved, tags,
	is_public, metrics, created_at, updated_at`

func scanInsight(row pgx.Row) (*domain.AIInsight, error) {
	var (
		insight    domain.AIInsight
		metricsRaw []byte
	)
	err := row.Scan(
		&insight.InsightID, &insight.ProjectID, &insight.Title, &insight.Description,
		&insight.Type, &insight.AITools, &insight.ImpactPercentage,
		&insight.CodeSnippet, &insight.BeforeCode, &insight.AfterCode,
		&insight.TimeSaved, &insight.Tags, &insight.IsPublic, &metricsRaw,
		&insight.CreatedAt, &insight.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan insight: %w", err)
	}
	if err := json.Unmarshal(metricsRaw, &insight.Metrics); err != nil {
		return nil, fmt.Errorf("failed to decode insight metrics: %w", err)
	}
	return &insight, nil
}

func (r *AIInsightRepository) SaveInsight(ctx context.Context, insight domain.AIInsight) error {
	metrics, err := json.Marshal(insight.Metrics)
	if err != nil {
		return fmt.Errorf("failed to encode insight metrics: %w", err)
	}
	if insight.AITools == nil {
		insight.AITools = []string{}
	}
	if insight.Tags == nil {
		insight.Tags = []string{}
	}
	query := `
		INSERT INTO ai_insights (insight_id, project_id, title, description, type, ai_tools,
			impact_percentage, code_snippet, before_code, after_code, time_saved, tags,
			is_public, metrics, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())`
	_, err = r.pool.Exec(ctx, query,
		insight.InsightID, insight.ProjectID, insight.Title, insight.Description,
		insight.Type, insight.AITools, insight.ImpactPercentage,
		insight.CodeSnippet, insight.BeforeCode, insight.AfterCode,
		insight.TimeSaved, insight.Tags, insight.IsPublic, metrics,
	)
	if err != nil {
		return fmt.Errorf("failed to save insight: %w", err)
	}
	return nil
}

func (r *AIInsightRepository) FindInsightByID(ctx context.Context, insightID string) (*domain.AIInsight, error) {
	query := fmt.Sprintf(`SELECT %s FROM ai_insights WHERE insight_id = $1`, insightColumns)
	return scanInsight(r.pool.QueryRow(ctx, query, insightID))
}

func (r *AIInsightRepository) FindInsights(ctx context.Context, filter repositories.InsightFilter) ([]domain.AIInsight, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM ai_insights
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::boolean IS NULL OR is_public = $2)
		ORDER BY created_at DESC`, insightColumns)
	rows, err := r.pool.Query(ctx, query, filter.Type, filter.IsPublic)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}
	defer rows.Close()
	return collectInsights(rows)
}

func (r *AIInsightRepository) FindInsightsByProject(ctx context.Context, projectID string) ([]domain.AIInsight, error) {
	query := fmt.Sprintf(`SELECT %s FROM ai_insights WHERE project_id = $1 ORDER BY created_at DESC`, insightColumns)
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights by project: %w", err)
	}
	defer rows.Close()
	return collectInsights(rows)
}

func (r *AIInsightRepository) FindTopInsights(ctx context.Context, limit int) ([]domain.AIInsight, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM ai_insights
		WHERE is_public = TRUE
		ORDER BY impact_percentage DESC, created_at DESC
		LIMIT $1`, insightColumns)
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top insights: %w", err)
	}
	defer rows.Close()
	return collectInsights(rows)
}

func collectInsights(rows pgx.Rows) ([]domain.AIInsight, error) {
	var insights []domain.AIInsight
	for rows.Next() {
		insight, err := scanInsight(rows)
		if err != nil {
			return nil, err
		}
		insights = append(insights, *insight)
	}
	return insights, rows.Err()
}

func (r *AIInsightRepository) UpdateInsight(ctx context.Context, insight domain.AIInsight) error {
	metrics, err := json.Marshal(insight.Metrics)
	if err != nil {
		return fmt.Errorf("failed to encode insight metrics: %w", err)
	}
	if insight.AITools == nil {
		insight.AITools = []string{}
	}
	if insight.Tags == nil {
		insight.Tags = []string{}
	}
	query := `
		UPDATE ai_insights
		SET title = $2, description = $3, type = $4, ai_tools = $5, impact_percentage = $6,
			code_snippet = $7, before_code = $8, after_code = $9, time_saved = $10,
			tags = $11, is_public = $12, metrics = $13, updated_at = NOW()
		WHERE insight_id = $1`
	tag, err := r.pool.Exec(ctx, query,
		insight.InsightID, insight.Title, insight.Description, insight.Type,
		insight.AITools, insight.ImpactPercentage, insight.CodeSnippet,
		insight.BeforeCode, insight.AfterCode, insight.TimeSaved,
		insight.Tags, insight.IsPublic, metrics,
	)
	if err != nil {
		return fmt.Errorf("failed to update insight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AIInsightRepository) DeleteInsight(ctx context.Context, insightID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ai_insights WHERE insight_id = $1`, insightID)
	if err != nil {
		return fmt.Errorf("failed to delete insight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
