package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
)

// ProjectService implements project CRUD and the view/like counters.
type ProjectService struct {
	projectRepo repositories.ProjectRepositoryFacade
}

var _ services.ProjectSvcFacade = (*ProjectService)(nil)

func NewProjectService(projectRepo repositories.ProjectRepositoryFacade) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	project := domain.Project{
		ProjectID:       uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    req.Technologies,
		Images:          dto.ToMediaFiles(req.Images),
		Videos:          dto.ToMediaFiles(req.Videos),
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		Category:        req.Category,
		Featured:        req.Featured,
	}
	if req.AIGenerated != nil {
		project.AIGenerated = domain.AIGenerated{
			Percentage:  req.AIGenerated.Percentage,
			Tools:       req.AIGenerated.Tools,
			Description: req.AIGenerated.Description,
		}
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("project created", "projectID", project.ProjectID)
	return &project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, error) {
	filter := repositories.ProjectFilter{Featured: params.Featured}
	if params.Category != "" {
		category := domain.ProjectCategory(params.Category)
		filter.Category = &category
	}
	return s.projectRepo.FindProjects(ctx, filter)
}

func (s *ProjectService) SearchProjects(ctx context.Context, query string) ([]domain.Project, error) {
	return s.projectRepo.SearchProjects(ctx, query)
}

// GetProjectByID returns the project and bumps its view counter. A failed
// counter update is logged but does not fail the read.
func (s *ProjectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.IncrementViews(ctx, projectID); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to increment project views", "projectID", projectID, "error", err)
	} else {
		project.Stats.Views++
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.LongDescription != nil {
		project.LongDescription = *req.LongDescription
	}
	if req.Technologies != nil {
		project.Technologies = req.Technologies
	}
	if req.Images != nil {
		project.Images = dto.ToMediaFiles(req.Images)
	}
	if req.Videos != nil {
		project.Videos = dto.ToMediaFiles(req.Videos)
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
	}
	if req.LiveURL != nil {
		project.LiveURL = *req.LiveURL
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.AIGenerated != nil {
		project.AIGenerated = domain.AIGenerated{
			Percentage:  req.AIGenerated.Percentage,
			Tools:       req.AIGenerated.Tools,
			Description: req.AIGenerated.Description,
		}
	}

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("project deleted", "projectID", projectID)
	return nil
}

// LikeProject bumps the like counter and returns the updated project.
func (s *ProjectService) LikeProject(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.IncrementLikes(ctx, projectID)
}
