package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
)

// GoogleOAuthService handles the server side of the Google OAuth flow: the
// frontend sends the authorization code, we exchange it and validate the ID
// token against our client ID.
type GoogleOAuthService struct {
	oauthConfig *oauth2.Config
	clientID    string
}

var _ services.GoogleOAuthSvcFacade = (*GoogleOAuthService)(nil)

func NewGoogleOAuthService(cfg *config.Config) *GoogleOAuthService {
	return &GoogleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		clientID: cfg.GoogleClientID,
	}
}

// ExchangeCodeForToken exchanges the authorization code for Google tokens.
func (s *GoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if s.clientID == "" {
		return nil, fmt.Errorf("google oauth is not configured")
	}
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", apperrors.ErrUnauthorized)
	}
	return token, nil
}

// ValidateGoogleIDToken verifies the ID token signature and audience.
func (s *GoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google id token: %w", apperrors.ErrUnauthorized)
	}
	return payload, nil
}
