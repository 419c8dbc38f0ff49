package repositories

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// ProjectFilter narrows project listings. Nil fields mean "no filter".
type ProjectFilter struct {
	Category *domain.ProjectCategory
	Featured *bool
}

// ProjectRepositoryFacade defines persistence operations for projects.
type ProjectRepositoryFacade interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	FindProjects(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	// SearchProjects matches the query against title and description.
	SearchProjects(ctx context.Context, query string) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error

	// IncrementViews / IncrementLikes bump the counters atomically in the store.
	IncrementViews(ctx context.Context, projectID string) error
	IncrementLikes(ctx context.Context, projectID string) (*domain.Project, error)
}
