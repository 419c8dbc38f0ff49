package services

import (
	"context"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade is the session manager: it orchestrates registration,
// credential verification, token rotation and revocation against the user
// store and the token issuer.
type AuthSvcFacade interface {
	// Register creates a visitor account and opens its first session.
	// Returns apperrors.ErrDuplicate when the email is already registered.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and opens a fresh session, invalidating any
	// prior refresh token. A missing user and a wrong password both return
	// apperrors.ErrUnauthorized with no distinguishable difference.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// RefreshTokens exchanges a refresh token for a new pair. The presented
	// token is compared against the stored hash; one successful refresh
	// invalidates the token just consumed.
	RefreshTokens(ctx context.Context, userID string, refreshToken string) (*dto.RefreshResponse, error)

	// Logout clears the stored refresh-token hash. Idempotent.
	Logout(ctx context.Context, userID string) error

	// LoginWithGoogle finds or provisions the user for a verified Google
	// identity and opens a session for it.
	LoginWithGoogle(ctx context.Context, email, name, providerUserID string) (*dto.AuthResponse, error)
}

// TokenSvcFacade is the token issuer. Access and refresh tokens carry the same
// claims but are signed with distinct secrets and expiries.
type TokenSvcFacade interface {
	// IssueTokenPair signs a new access/refresh pair for the user.
	IssueTokenPair(user *domain.User) (domain.TokenPair, error)

	// VerifyAccessToken validates signature and expiry against the access
	// secret. Any failure surfaces as apperrors.ErrUnauthorized; the
	// invalid/expired distinction is for logging only.
	VerifyAccessToken(tokenString string) (*domain.TokenClaims, error)

	// DecodeSubject reads the subject claim without verifying the signature.
	// Never use the result for authorization decisions.
	DecodeSubject(tokenString string) (string, error)
}

// GoogleOAuthSvcFacade wraps the Google side of the OAuth code-exchange flow.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
