package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
)

func testTokenService() *services.TokenService {
	return services.NewTokenService(&config.Config{
		JWTIssuer:          "portfolio-backend-test",
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
	})
}

func newTestRouter(tokenSvc *services.TokenService, roles ...domain.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(tokenSvc)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := middleware.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userID": id.UserID, "role": string(id.Role)})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	r := newTestRouter(testTokenService())

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "some-token").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Basic abc123").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer ").Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := newTestRouter(testTokenService())

	w := doRequest(r, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"statusCode":401`)
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	tokenSvc := testTokenService()
	r := newTestRouter(tokenSvc)

	pair, err := tokenSvc.IssueTokenPair(&domain.User{UserID: uuid.NewString(), Role: domain.RoleVisitor})
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+pair.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	tokenSvc := testTokenService()
	r := newTestRouter(tokenSvc)

	user := &domain.User{UserID: uuid.NewString(), Email: "user@example.com", Role: domain.RoleVisitor}
	pair, err := tokenSvc.IssueTokenPair(user)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.UserID)
	assert.Contains(t, w.Body.String(), "visitor")
}

func TestRequireRoles_VisitorForbidden(t *testing.T) {
	tokenSvc := testTokenService()
	r := newTestRouter(tokenSvc, domain.RoleAdmin)

	pair, err := tokenSvc.IssueTokenPair(&domain.User{UserID: uuid.NewString(), Role: domain.RoleVisitor})
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"statusCode":403`)
}

func TestRequireRoles_AdminAllowed(t *testing.T) {
	tokenSvc := testTokenService()
	r := newTestRouter(tokenSvc, domain.RoleAdmin)

	pair, err := tokenSvc.IssueTokenPair(&domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin})
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
