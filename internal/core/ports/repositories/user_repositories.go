package repositories

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	// Returns apperrors.ErrNotFound when no such user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their login email.
	// Returns apperrors.ErrNotFound when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	// Returns apperrors.ErrDuplicate when the email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile fields and password hash.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes the user record. Administrative use only.
	DeleteUser(ctx context.Context, userID string) error
}

// UserSessionWriter manages the single refresh-token slot on the user row.
type UserSessionWriter interface {
	// UpdateRefreshTokenHash overwrites the stored refresh token hash.
	// An empty hash clears the slot (logout). The update is a single-row
	// write, so concurrent sessions resolve as last-write-wins.
	UpdateRefreshTokenHash(ctx context.Context, userID string, hash string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserSessionWriter
}
