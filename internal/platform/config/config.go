package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. The two token secrets are distinct
// on purpose: an access token can never pass refresh verification and vice versa.
type Config struct {
	Port         string
	DatabaseURL  string
	IsProduction bool

	JWTIssuer          string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	BcryptCost         int

	CORSAllowedOrigins []string

	// Optional integrations; empty values disable the feature.
	PosthogAPIKey string
	RedisAddr     string
	RedisPassword string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_ISSUER", "portfolio-backend")
	viper.SetDefault("JWT_ACCESS_SECRET", "insecure-dev-access-secret-change-me")
	viper.SetDefault("JWT_REFRESH_SECRET", "insecure-dev-refresh-secret-change-me")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	viper.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")

	viper.AutomaticEnv()

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY: %w", err)
	}
	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRY: %w", err)
	}

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		AccessTokenSecret:  viper.GetString("JWT_ACCESS_SECRET"),
		RefreshTokenSecret: viper.GetString("JWT_REFRESH_SECRET"),
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: refreshExpiry,
		BcryptCost:         viper.GetInt("BCRYPT_COST"),
		CORSAllowedOrigins: strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ","),
		PosthogAPIKey:      viper.GetString("POSTHOG_API_KEY"),
		RedisAddr:          viper.GetString("REDIS_ADDR"),
		RedisPassword:      viper.GetString("REDIS_PASSWORD"),
		GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  viper.GetString("GOOGLE_REDIRECT_URL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}

	return cfg, nil
}
