package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn           func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn        func(ctx context.Context, email string) (*domain.User, error)
	FindUsersFn              func(ctx context.Context, limit, offset int) ([]domain.User, error)
	SaveUserFn               func(ctx context.Context, user domain.User) error
	UpdateUserFn             func(ctx context.Context, user domain.User) error
	DeleteUserFn             func(ctx context.Context, userID string) error
	UpdateRefreshTokenHashFn func(ctx context.Context, userID string, hash string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.FindUsersFn != nil {
		return m.FindUsersFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshTokenHash(ctx context.Context, userID string, hash string) error {
	if m.UpdateRefreshTokenHashFn != nil {
		return m.UpdateRefreshTokenHashFn(ctx, userID, hash)
	}
	args := m.Called(ctx, userID, hash)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTIssuer:          "portfolio-backend-test",
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		BcryptCost:         4, // MinCost keeps the suite fast
	}
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	cfg      *config.Config
	mockRepo *MockUserRepository
	tokenSvc *services.TokenService
	authSvc  *services.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = testConfig()
	s.mockRepo = new(MockUserRepository)
	s.tokenSvc = services.NewTokenService(s.cfg)
	s.authSvc = services.NewAuthService(s.mockRepo, s.tokenSvc, s.cfg)
}

// storedUser wires the mock so the suite behaves like a single-row user store.
func (s *AuthServiceTestSuite) storedUser(user *domain.User) {
	s.mockRepo.FindUserByIDFn = func(_ context.Context, userID string) (*domain.User, error) {
		if user != nil && user.UserID == userID {
			u := *user
			return &u, nil
		}
		return nil, apperrors.ErrNotFound
	}
	s.mockRepo.FindUserByEmailFn = func(_ context.Context, email string) (*domain.User, error) {
		if user != nil && user.Email == email {
			u := *user
			return &u, nil
		}
		return nil, apperrors.ErrNotFound
	}
	s.mockRepo.UpdateRefreshTokenHashFn = func(_ context.Context, userID string, hash string) error {
		if user == nil || user.UserID != userID {
			return apperrors.ErrNotFound
		}
		user.RefreshTokenHash = hash
		return nil
	}
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	var saved domain.User
	s.mockRepo.SaveUserFn = func(_ context.Context, user domain.User) error {
		saved = user
		return nil
	}
	s.mockRepo.UpdateRefreshTokenHashFn = func(_ context.Context, userID string, hash string) error {
		saved.RefreshTokenHash = hash
		return nil
	}

	resp, err := s.authSvc.Register(s.ctx, dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "password123",
		Name:     "New User",
	})

	s.Require().NoError(err)
	s.Equal("new@example.com", resp.User.Email)
	s.Equal(domain.RoleVisitor, resp.User.Role)
	s.NotEmpty(resp.AccessToken)
	s.NotEmpty(resp.RefreshToken)

	// Stored credentials are hashed, never plaintext.
	s.NotEqual("password123", saved.PasswordHash)
	s.True(utils.CheckPasswordHash("password123", saved.PasswordHash))
	s.Equal(utils.HashRefreshToken(resp.RefreshToken), saved.RefreshTokenHash)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	s.mockRepo.SaveUserFn = func(_ context.Context, _ domain.User) error {
		return apperrors.ErrDuplicate
	}

	resp, err := s.authSvc.Register(s.ctx, dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
		Name:     "Someone",
	})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AuthServiceTestSuite) makeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	s.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Email:        "user@example.com",
		Name:         "User",
		PasswordHash: hash,
		Role:         domain.RoleVisitor,
		AuthProvider: domain.ProviderLocal,
	}
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	user := s.makeUser("correct-horse1")
	s.storedUser(user)

	resp, err := s.authSvc.Login(s.ctx, dto.LoginRequest{Email: user.Email, Password: "correct-horse1"})

	s.Require().NoError(err)
	s.Equal(user.UserID, resp.User.UserID)
	s.Equal(utils.HashRefreshToken(resp.RefreshToken), user.RefreshTokenHash)
}

func (s *AuthServiceTestSuite) TestLogin_FailuresAreIndistinguishable() {
	user := s.makeUser("correct-horse1")
	s.storedUser(user)

	_, wrongPasswordErr := s.authSvc.Login(s.ctx, dto.LoginRequest{Email: user.Email, Password: "wrong-password"})
	_, unknownEmailErr := s.authSvc.Login(s.ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "correct-horse1"})

	s.ErrorIs(wrongPasswordErr, apperrors.ErrUnauthorized)
	s.ErrorIs(unknownEmailErr, apperrors.ErrUnauthorized)
	s.Equal(wrongPasswordErr.Error(), unknownEmailErr.Error())
}

func (s *AuthServiceTestSuite) TestLogin_InvalidatesPreviousRefreshToken() {
	user := s.makeUser("correct-horse1")
	s.storedUser(user)

	first, err := s.authSvc.Login(s.ctx, dto.LoginRequest{Email: user.Email, Password: "correct-horse1"})
	s.Require().NoError(err)
	_, err = s.authSvc.Login(s.ctx, dto.LoginRequest{Email: user.Email, Password: "correct-horse1"})
	s.Require().NoError(err)

	_, err = s.authSvc.RefreshTokens(s.ctx, user.UserID, first.RefreshToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_RotatesPair() {
	user := s.makeUser("correct-horse1")
	s.storedUser(user)

	login, err := s.authSvc.Login(s.ctx, dto.LoginRequest{Email: user.Email, Password: "correct-horse1"})
	s.Require().NoError(err)

	refreshed, err := s.authSvc.RefreshTokens(s.ctx, user.UserID, login.RefreshToken)
	s.Require().NoError(err)
	s.NotEmpty(refreshed.AccessToken)
	s.NotEqual(login.RefreshToken, refreshed.RefreshToken)

	// The consumed token no longer matches the stored hash.
	_, err = s.authSvc.RefreshTokens(s.ctx, user.UserID, login.RefreshToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	// The new one does.
	_, err = s.authSvc.RefreshTokens(s.ctx, user.UserID, refreshed.RefreshToken)
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_NoActiveSession() {
	user := s.makeUser("correct-horse1")
	s.storedUser(user)

	pair, err := s.tokenSvc.IssueTokenPair(user)
	s.Require().NoError(err)

	_, err = s.authSvc.RefreshTokens(s.ctx, user.UserID, pair.RefreshToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_UnknownUser() {
	s.storedUser(nil)

	_, err := s.authSvc.RefreshTokens(s.ctx, uuid.NewString(), "some-token")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestLogout_ClearsSessionAndIsIdempotent() {
	user := s.makeUser("correct-horse1")
	s.storedUser(user)

	login, err := s.authSvc.Login(s.ctx, dto.LoginRequest{Email: user.Email, Password: "correct-horse1"})
	s.Require().NoError(err)

	s.Require().NoError(s.authSvc.Logout(s.ctx, user.UserID))
	s.Empty(user.RefreshTokenHash)

	_, err = s.authSvc.RefreshTokens(s.ctx, user.UserID, login.RefreshToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	// Logging out again succeeds.
	s.NoError(s.authSvc.Logout(s.ctx, user.UserID))
}

func (s *AuthServiceTestSuite) TestLoginWithGoogle_ProvisionsNewUser() {
	var saved *domain.User
	s.mockRepo.FindUserByEmailFn = func(_ context.Context, _ string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}
	s.mockRepo.SaveUserFn = func(_ context.Context, user domain.User) error {
		saved = &user
		return nil
	}
	s.mockRepo.UpdateRefreshTokenHashFn = func(_ context.Context, _ string, _ string) error {
		return nil
	}

	resp, err := s.authSvc.LoginWithGoogle(s.ctx, "g@example.com", "G User", "google-sub-123")

	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Equal(domain.ProviderGoogle, saved.AuthProvider)
	s.Equal("google-sub-123", saved.ProviderUserID)
	s.Empty(saved.PasswordHash)
	s.Equal("g@example.com", resp.User.Email)
}

func (s *AuthServiceTestSuite) TestLoginWithGoogle_ExistingUser() {
	user := s.makeUser("correct-horse1")
	s.storedUser(user)

	resp, err := s.authSvc.LoginWithGoogle(s.ctx, user.Email, user.Name, "google-sub-123")

	s.Require().NoError(err)
	s.Equal(user.UserID, resp.User.UserID)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
