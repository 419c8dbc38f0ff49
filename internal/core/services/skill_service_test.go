package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// --- Mock SkillRepository ---
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) SaveSkill(ctx context.Context, skill domain.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) FindSkillByID(ctx context.Context, skillID string) (*domain.Skill, error) {
	args := m.Called(ctx, skillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepository) FindSkills(ctx context.Context, filter repositories.SkillFilter) ([]domain.Skill, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepository) UpdateSkill(ctx context.Context, skill domain.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) DeleteSkill(ctx context.Context, skillID string) error {
	args := m.Called(ctx, skillID)
	return args.Error(0)
}

func TestSkillService_CreateSkill_DefaultsToActive(t *testing.T) {
	repo := new(MockSkillRepository)
	svc := services.NewSkillService(repo)

	repo.On("SaveSkill", mock.Anything, mock.MatchedBy(func(s domain.Skill) bool {
		return s.IsActive && s.Name == "Go"
	})).Return(nil)

	skill, err := svc.CreateSkill(context.Background(), dto.CreateSkillRequest{
		Name:     "Go",
		Category: domain.SkillBackend,
		Level:    90,
	})

	require.NoError(t, err)
	assert.True(t, skill.IsActive)
	repo.AssertExpectations(t)
}

func TestSkillService_GetSkillStats(t *testing.T) {
	repo := new(MockSkillRepository)
	svc := services.NewSkillService(repo)

	active := true
	repo.On("FindSkills", mock.Anything, repositories.SkillFilter{IsActive: &active}).Return([]domain.Skill{
		{Category: domain.SkillBackend, Level: 90},
		{Category: domain.SkillBackend, Level: 75},
		{Category: domain.SkillFrontend, Level: 60},
	}, nil)

	stats, err := svc.GetSkillStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	require.Len(t, stats.Categories, 2)
	// Sorted by category name: backend before frontend.
	assert.Equal(t, domain.SkillBackend, stats.Categories[0].Category)
	assert.Equal(t, 2, stats.Categories[0].Count)
	assert.InDelta(t, 82.5, stats.Categories[0].AvgLevel, 0.001)
	assert.Equal(t, domain.SkillFrontend, stats.Categories[1].Category)
	assert.InDelta(t, 60.0, stats.Categories[1].AvgLevel, 0.001)
}
