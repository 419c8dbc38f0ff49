package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
)

// TokenService signs and verifies the access/refresh token pair. Access and
// refresh tokens carry the same claims but are signed with distinct secrets,
// so neither can stand in for the other.
type TokenService struct {
	issuer        string
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	timeNow       func() time.Time
}

var _ services.TokenSvcFacade = (*TokenService)(nil)

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		issuer:        cfg.JWTIssuer,
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessExpiry:  cfg.AccessTokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
		timeNow:       time.Now,
	}
}

func (s *TokenService) sign(user *domain.User, secret []byte, expiry time.Duration) (string, error) {
	now := s.timeNow()
	claims := domain.TokenClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// IssueTokenPair issues a fresh access/refresh pair for the user.
func (s *TokenService) IssueTokenPair(user *domain.User) (domain.TokenPair, error) {
	accessToken, err := s.sign(user, s.accessSecret, s.accessExpiry)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refreshToken, err := s.sign(user, s.refreshSecret, s.refreshExpiry)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccessToken validates the signature and expiry of an access token and
// returns its claims. Refresh tokens always fail here: different secret.
func (s *TokenService) VerifyAccessToken(tokenString string) (*domain.TokenClaims, error) {
	claims := &domain.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}

// DecodeSubject extracts the subject claim from a token without verifying its
// signature. Callers must pair it with a stored-hash comparison; the hash
// check is what authenticates the refresh request.
func (s *TokenService) DecodeSubject(tokenString string) (string, error) {
	claims := &domain.TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", apperrors.ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}
