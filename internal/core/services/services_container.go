package services

import (
	"log/slog"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/utils"
)

// RepositoryBundle groups the repository implementations the services need.
type RepositoryBundle struct {
	User      repositories.UserRepositoryFacade
	Project   repositories.ProjectRepositoryFacade
	Skill     repositories.SkillRepositoryFacade
	Review    repositories.ReviewRepositoryFacade
	Analytics repositories.AnalyticsRepositoryFacade
	AIInsight repositories.AIInsightRepositoryFacade
}

// NewServiceContainer wires all services with their dependencies.
func NewServiceContainer(repos RepositoryBundle, cfg *config.Config, logger *slog.Logger) *services.ServiceContainer {
	tokenSvc := NewTokenService(cfg)
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)

	return &services.ServiceContainer{
		Auth:        NewAuthService(repos.User, tokenSvc, cfg),
		Token:       tokenSvc,
		GoogleOAuth: NewGoogleOAuthService(cfg),
		User:        NewUserService(repos.User, cfg),
		Project:     NewProjectService(repos.Project),
		Skill:       NewSkillService(repos.Skill),
		Review:      NewReviewService(repos.Review),
		Analytics:   NewAnalyticsService(repos.Analytics, posthogClient),
		AIInsight:   NewAIInsightService(repos.AIInsight),
	}
}
