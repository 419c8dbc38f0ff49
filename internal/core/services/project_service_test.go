package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/services"
)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjects(ctx context.Context, filter repositories.ProjectFilter) ([]domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SearchProjects(ctx context.Context, query string) ([]domain.Project, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) IncrementViews(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) IncrementLikes(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func TestProjectService_GetProjectByID_CountsView(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := services.NewProjectService(repo)

	repo.On("FindProjectByID", mock.Anything, "p-1").Return(&domain.Project{
		ProjectID: "p-1",
		Stats:     domain.ProjectStats{Views: 10},
	}, nil)
	repo.On("IncrementViews", mock.Anything, "p-1").Return(nil)

	project, err := svc.GetProjectByID(context.Background(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, int64(11), project.Stats.Views)
	repo.AssertExpectations(t)
}

func TestProjectService_GetProjectByID_ReadSurvivesCounterFailure(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := services.NewProjectService(repo)

	repo.On("FindProjectByID", mock.Anything, "p-1").Return(&domain.Project{
		ProjectID: "p-1",
		Stats:     domain.ProjectStats{Views: 10},
	}, nil)
	repo.On("IncrementViews", mock.Anything, "p-1").Return(errors.New("db down"))

	project, err := svc.GetProjectByID(context.Background(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, int64(10), project.Stats.Views)
}

func TestProjectService_LikeProject(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := services.NewProjectService(repo)

	repo.On("IncrementLikes", mock.Anything, "p-1").Return(&domain.Project{
		ProjectID: "p-1",
		Stats:     domain.ProjectStats{Likes: 4},
	}, nil)

	project, err := svc.LikeProject(context.Background(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, int64(4), project.Stats.Likes)
	repo.AssertExpectations(t)
}
