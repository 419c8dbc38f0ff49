package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/handlers"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, userID string, refreshToken string) (*dto.RefreshResponse, error) {
	args := m.Called(ctx, userID, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RefreshResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) LoginWithGoogle(ctx context.Context, email, name, providerUserID string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, email, name, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockSvc  *MockAuthService
	tokenSvc *services.TokenService
}

func (s *AuthHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.mockSvc = new(MockAuthService)
	s.tokenSvc = services.NewTokenService(&config.Config{
		JWTIssuer:          "portfolio-backend-test",
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
	})

	authHandler := handlers.NewAuthHandler(s.mockSvc, s.tokenSvc)
	s.router = gin.New()
	auth := s.router.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.AuthMiddleware(s.tokenSvc), authHandler.Logout)
}

func (s *AuthHandlerTestSuite) postJSON(path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) TestRegister_Created() {
	req := dto.RegisterRequest{Email: "new@example.com", Password: "password123", Name: "New User"}
	s.mockSvc.On("Register", mock.Anything, req).Return(&dto.AuthResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         dto.UserResponse{Email: req.Email, Role: domain.RoleVisitor},
	}, nil)

	w := s.postJSON("/api/v1/auth/register", req, nil)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("access", resp.AccessToken)
	s.Equal(domain.RoleVisitor, resp.User.Role)
	s.mockSvc.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestRegister_ValidationFailures() {
	cases := []dto.RegisterRequest{
		{Email: "not-an-email", Password: "password123", Name: "User"},
		{Email: "ok@example.com", Password: "short", Name: "User"},
		{Email: "ok@example.com", Password: "password123", Name: "   "},
	}
	for _, req := range cases {
		w := s.postJSON("/api/v1/auth/register", req, nil)
		s.Equal(http.StatusBadRequest, w.Code)
	}
	s.mockSvc.AssertNotCalled(s.T(), "Register")
}

func (s *AuthHandlerTestSuite) TestRegister_Conflict() {
	req := dto.RegisterRequest{Email: "taken@example.com", Password: "password123", Name: "User"}
	s.mockSvc.On("Register", mock.Anything, req).Return(nil, apperrors.ErrDuplicate)

	w := s.postJSON("/api/v1/auth/register", req, nil)

	s.Equal(http.StatusConflict, w.Code)

	var body dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(http.StatusConflict, body.StatusCode)
	s.Equal("/api/v1/auth/register", body.Path)
	s.Equal(http.MethodPost, body.Method)
	s.NotEmpty(body.Timestamp)
	s.NotEmpty(body.Message)
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	req := dto.LoginRequest{Email: "user@example.com", Password: "wrong-password"}
	s.mockSvc.On("Login", mock.Anything, req).Return(nil, apperrors.ErrUnauthorized)

	w := s.postJSON("/api/v1/auth/login", req, nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Invalid credentials")
}

func (s *AuthHandlerTestSuite) TestRefresh_UsesSubjectFromToken() {
	userID := uuid.NewString()
	pair, err := s.tokenSvc.IssueTokenPair(&domain.User{UserID: userID, Role: domain.RoleVisitor})
	s.Require().NoError(err)

	s.mockSvc.On("RefreshTokens", mock.Anything, userID, pair.RefreshToken).Return(&dto.RefreshResponse{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}, nil)

	w := s.postJSON("/api/v1/auth/refresh", dto.RefreshTokenRequest{RefreshToken: pair.RefreshToken}, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "new-access")
	s.mockSvc.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestRefresh_GarbageToken() {
	w := s.postJSON("/api/v1/auth/refresh", dto.RefreshTokenRequest{RefreshToken: "garbage"}, nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockSvc.AssertNotCalled(s.T(), "RefreshTokens")
}

func (s *AuthHandlerTestSuite) TestLogout_RequiresAuth() {
	w := s.postJSON("/api/v1/auth/logout", nil, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockSvc.AssertNotCalled(s.T(), "Logout")
}

func (s *AuthHandlerTestSuite) TestLogout_NoContent() {
	userID := uuid.NewString()
	pair, err := s.tokenSvc.IssueTokenPair(&domain.User{UserID: userID, Role: domain.RoleVisitor})
	s.Require().NoError(err)

	s.mockSvc.On("Logout", mock.Anything, userID).Return(nil)

	w := s.postJSON("/api/v1/auth/logout", nil, map[string]string{
		"Authorization": "Bearer " + pair.AccessToken,
	})

	s.Equal(http.StatusNoContent, w.Code)
	s.mockSvc.AssertExpectations(s.T())
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
