package services

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// ProjectSvcFacade exposes project CRUD and engagement counters.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, error)
	SearchProjects(ctx context.Context, query string) ([]domain.Project, error)
	// GetProjectByID increments the view counter as a side effect.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	LikeProject(ctx context.Context, projectID string) (*domain.Project, error)
}
