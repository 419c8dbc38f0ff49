package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/utils"
)

// AuthService owns the session lifecycle: registration, credential
// verification, refresh rotation and logout. One active session per user; a
// new login or refresh replaces the stored refresh token hash and implicitly
// invalidates the previous refresh token.
type AuthService struct {
	userRepo   repositories.UserRepositoryFacade
	tokenSvc   services.TokenSvcFacade
	bcryptCost int
}

var _ services.AuthSvcFacade = (*AuthService)(nil)

func NewAuthService(userRepo repositories.UserRepositoryFacade, tokenSvc services.TokenSvcFacade, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenSvc:   tokenSvc,
		bcryptCost: cfg.BcryptCost,
	}
}

// issueSession issues a token pair for the user and persists the hash of the
// new refresh token, replacing whatever session existed before.
func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (domain.TokenPair, error) {
	pair, err := s.tokenSvc.IssueTokenPair(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	hash := utils.HashRefreshToken(pair.RefreshToken)
	if err := s.userRepo.UpdateRefreshTokenHash(ctx, user.UserID, hash); err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return pair, nil
}

// Register creates a new local user and logs it in. Email uniqueness is
// enforced by the store; duplicates surface as apperrors.ErrDuplicate.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         domain.RoleVisitor,
		AuthProvider: domain.ProviderLocal,
	}
	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		logger.Error("failed to save user", "error", err)
		return nil, err
	}

	pair, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	logger.Info("user registered", "userID", user.UserID)
	return &dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

// Login verifies credentials and starts a session. Unknown email and wrong
// password both return apperrors.ErrUnauthorized; callers cannot tell which
// check failed.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	pair, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	logger.Info("user logged in", "userID", user.UserID)
	return &dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

// RefreshTokens rotates the session for userID. The presented token must
// hash-match the stored value; a match proves the caller holds the token that
// was most recently issued. On success the pair is replaced, so each refresh
// token works at most once.
func (s *AuthService) RefreshTokens(ctx context.Context, userID string, refreshToken string) (*dto.RefreshResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.RefreshTokenHash == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	pair, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout clears the stored refresh token hash. Idempotent: logging out an
// already-logged-out user succeeds.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshTokenHash(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// LoginWithGoogle finds or creates a user for a verified Google identity and
// starts a session. Google accounts have no local password; password login
// for them always fails.
func (s *AuthService) LoginWithGoogle(ctx context.Context, email, name, providerUserID string) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		user = &domain.User{
			UserID:         uuid.NewString(),
			Email:          email,
			Name:           name,
			Role:           domain.RoleVisitor,
			AuthProvider:   domain.ProviderGoogle,
			ProviderUserID: providerUserID,
		}
		if err := s.userRepo.SaveUser(ctx, *user); err != nil {
			logger.Error("failed to save google user", "error", err)
			return nil, err
		}
		logger.Info("user registered via google", "userID", user.UserID)
	}

	pair, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}
