package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/repositories"
)

const uniqueViolationCode = "23505"

// UserRepository implements repositories.UserRepositoryFacade on PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ repositories.UserRepositoryFacade = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `user_id, email, name, password_hash, role, avatar, bio, linkedin, github,
	COALESCE(refresh_token_hash, ''), auth_provider, provider_user_id, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID, &user.Email, &user.Name, &user.PasswordHash, &user.Role,
		&user.Avatar, &user.Bio, &user.Linkedin, &user.Github,
		&user.RefreshTokenHash, &user.AuthProvider, &user.ProviderUserID,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, query, userID))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`, userColumns)
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, email, name, password_hash, role, avatar, bio, linkedin, github,
			auth_provider, provider_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())`
	_, err := r.pool.Exec(ctx, query,
		user.UserID, user.Email, user.Name, user.PasswordHash, user.Role,
		user.Avatar, user.Bio, user.Linkedin, user.Github,
		user.AuthProvider, user.ProviderUserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $2, password_hash = $3, avatar = $4, bio = $5, linkedin = $6, github = $7,
			updated_at = NOW()
		WHERE user_id = $1`
	tag, err := r.pool.Exec(ctx, query,
		user.UserID, user.Name, user.PasswordHash,
		user.Avatar, user.Bio, user.Linkedin, user.Github,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshTokenHash overwrites the session slot. An empty hash is stored
// as NULL, which ends the session. Deliberately not conditional on the prior
// value: last write wins.
func (r *UserRepository) UpdateRefreshTokenHash(ctx context.Context, userID string, hash string) error {
	query := `UPDATE users SET refresh_token_hash = NULLIF($2, ''), updated_at = NOW() WHERE user_id = $1`
	tag, err := r.pool.Exec(ctx, query, userID, hash)
	if err != nil {
		return fmt.Errorf("failed to update refresh token hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
