package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
)

// RegisterHandlers wires every route group onto the engine. Auth endpoints
// that accept credentials get a tight per-IP rate limit.
func RegisterHandlers(r *gin.Engine, svc *services.ServiceContainer, pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) {
	authHandler := NewAuthHandler(svc.Auth, svc.Token)
	oauthHandler := NewGoogleOAuthHandler(svc.GoogleOAuth, svc.Auth)
	userHandler := NewUserHandler(svc.User)
	projectHandler := NewProjectHandler(svc.Project)
	skillHandler := NewSkillHandler(svc.Skill)
	reviewHandler := NewReviewHandler(svc.Review)
	analyticsHandler := NewAnalyticsHandler(svc.Analytics)
	insightHandler := NewAIInsightHandler(svc.AIInsight)
	homeHandler := NewHomeHandler(pool)

	requireAuth := middleware.AuthMiddleware(svc.Token)
	requireAdmin := middleware.RequireRoles(domain.RoleAdmin)
	authRateLimit := middleware.NewRateLimiterMiddleware(cfg, logger, "5-M")
	trackRateLimit := middleware.NewRateLimiterMiddleware(cfg, logger, "60-M")

	r.GET("/", homeHandler.Home)
	r.GET("/health", homeHandler.Health)

	if !cfg.IsProduction {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authRateLimit, authHandler.Register)
		auth.POST("/login", authRateLimit, authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/google", authRateLimit, oauthHandler.ExchangeCode)
		auth.POST("/logout", requireAuth, authHandler.Logout)
	}

	users := api.Group("/users", requireAuth)
	{
		users.GET("", requireAdmin, userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", requireAdmin, userHandler.DeleteUser)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/search", projectHandler.SearchProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.POST("/:id/like", projectHandler.LikeProject)
		projects.POST("", requireAuth, requireAdmin, projectHandler.CreateProject)
		projects.PATCH("/:id", requireAuth, requireAdmin, projectHandler.UpdateProject)
		projects.DELETE("/:id", requireAuth, requireAdmin, projectHandler.DeleteProject)
	}

	skills := api.Group("/skills")
	{
		skills.GET("", skillHandler.ListSkills)
		skills.GET("/stats", skillHandler.GetSkillStats)
		skills.GET("/category/:category", skillHandler.ListSkillsByCategory)
		skills.GET("/level/:level", skillHandler.ListSkillsByMinLevel)
		skills.GET("/:id", skillHandler.GetSkill)
		skills.POST("", requireAuth, requireAdmin, skillHandler.CreateSkill)
		skills.PATCH("/:id", requireAuth, requireAdmin, skillHandler.UpdateSkill)
		skills.DELETE("/:id", requireAuth, requireAdmin, skillHandler.DeleteSkill)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewHandler.ListPublicReviews)
		reviews.GET("/stats", reviewHandler.GetReviewStats)
		reviews.POST("", requireAuth, reviewHandler.CreateReview)
		reviews.GET("/my-reviews", requireAuth, reviewHandler.ListMyReviews)
		reviews.GET("/all", requireAuth, requireAdmin, reviewHandler.ListReviews)
		reviews.GET("/:id", reviewHandler.GetReview)
		reviews.PATCH("/:id", requireAuth, requireAdmin, reviewHandler.UpdateReview)
		reviews.POST("/:id/approve", requireAuth, requireAdmin, reviewHandler.ApproveReview)
		reviews.POST("/:id/reject", requireAuth, requireAdmin, reviewHandler.RejectReview)
		reviews.DELETE("/:id", requireAuth, requireAdmin, reviewHandler.DeleteReview)
	}

	analytics := api.Group("/analytics")
	{
		analytics.POST("/track", trackRateLimit, analyticsHandler.TrackEvent)
		analytics.GET("/overview", requireAuth, requireAdmin, analyticsHandler.GetOverview)
		analytics.GET("/session/:sessionId", requireAuth, requireAdmin, analyticsHandler.ListSessionEvents)
	}

	insights := api.Group("/ai-insights")
	{
		insights.GET("", insightHandler.ListInsights)
		insights.GET("/top", insightHandler.ListTopInsights)
		insights.GET("/stats", insightHandler.GetInsightStats)
		insights.GET("/project/:projectId", insightHandler.ListInsightsByProject)
		insights.GET("/:id", insightHandler.GetInsight)
		insights.POST("", requireAuth, requireAdmin, insightHandler.CreateInsight)
		insights.PATCH("/:id", requireAuth, requireAdmin, insightHandler.UpdateInsight)
		insights.DELETE("/:id", requireAuth, requireAdmin, insightHandler.DeleteInsight)
	}
}
