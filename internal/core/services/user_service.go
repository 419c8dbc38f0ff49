package services

import (
	"context"
	"fmt"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/utils"
)

// UserService implements user profile management.
type UserService struct {
	userRepo   repositories.UserRepositoryFacade
	bcryptCost int
}

var _ services.UserSvcFacade = (*UserService)(nil)

func NewUserService(userRepo repositories.UserRepositoryFacade, cfg *config.Config) *UserService {
	return &UserService{userRepo: userRepo, bcryptCost: cfg.BcryptCost}
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.FindUsers(ctx, limit, offset)
}

// UpdateUser applies partial profile updates. A password change re-hashes with
// bcrypt; the role and email are not updatable through this path.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Linkedin != nil {
		user.Linkedin = *req.Linkedin
	}
	if req.Github != nil {
		user.Github = *req.Github
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("user updated", "userID", userID)
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("user deleted", "userID", userID)
	return nil
}
