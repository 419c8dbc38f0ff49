package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
)

// AnalyticsRepository implements repositories.AnalyticsRepositoryFacade on
// PostgreSQL. The events table is append-only; metadata is stored as JSONB.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

var _ repositories.AnalyticsRepositoryFacade = (*AnalyticsRepository)(nil)

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) SaveEvent(ctx context.Context, event domain.AnalyticsEvent) error {
	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode event metadata: %w", err)
	}
	query := `
		INSERT INTO analytics_events (event_id, event_type, page, referrer, user_agent,
			ip, country, city, device, browser, os, metadata, session_id, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.pool.Exec(ctx, query,
		event.EventID, event.EventType, event.Page, event.Referrer, event.UserAgent,
		event.IP, event.Country, event.City, event.Device, event.Browser, event.OS,
		metadata, event.SessionID, event.Duration, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *AnalyticsRepository) CountByEventType(ctx context.Context) ([]repositories.EventTypeCount, error) {
	query := `
		SELECT event_type, COUNT(*)
		FROM analytics_events
		GROUP BY event_type
		ORDER BY COUNT(*) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	defer rows.Close()

	var counts []repositories.EventTypeCount
	for rows.Next() {
		var c repositories.EventTypeCount
		if err := rows.Scan(&c.EventType, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *AnalyticsRepository) FindEventsBySession(ctx context.Context, sessionID string) ([]domain.AnalyticsEvent, error) {
	query := `
		SELECT event_id, event_type, page, referrer, user_agent, ip, country, city,
			device, browser, os, metadata, session_id, duration, created_at
		FROM analytics_events
		WHERE session_id = $1
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session events: %w", err)
	}
	defer rows.Close()

	var events []domain.AnalyticsEvent
	for rows.Next() {
		var (
			event       domain.AnalyticsEvent
			metadataRaw []byte
		)
		err := rows.Scan(
			&event.EventID, &event.EventType, &event.Page, &event.Referrer, &event.UserAgent,
			&event.IP, &event.Country, &event.City, &event.Device, &event.Browser, &event.OS,
			&metadataRaw, &event.SessionID, &event.Duration, &event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if len(metadataRaw) > 0 {
			if err := json.Unmarshal(metadataRaw, &event.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode event metadata: %w", err)
			}
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
