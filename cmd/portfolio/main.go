package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/cmd/docs"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/adapters/database/pgsql"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/handlers"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Portfolio Backend API
// @version 1.0
// @description Content management and session API for the portfolio site.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterCustomValidators()

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := services.RepositoryBundle{
		User:      pgsql.NewUserRepository(dbPool),
		Project:   pgsql.NewProjectRepository(dbPool),
		Skill:     pgsql.NewSkillRepository(dbPool),
		Review:    pgsql.NewReviewRepository(dbPool),
		Analytics: pgsql.NewAnalyticsRepository(dbPool),
		AIInsight: pgsql.NewAIInsightRepository(dbPool),
	}
	svc := services.NewServiceContainer(repos, cfg, logger)

	docs.SwaggerInfo.BasePath = "/api/v1"
	handlers.RegisterHandlers(r, svc, dbPool, cfg, logger)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending "up" migrations over a temporary database/sql
// connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
