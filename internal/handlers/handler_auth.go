package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
)

// AuthHandler handles the session lifecycle endpoints.
type AuthHandler struct {
	authSvc  services.AuthSvcFacade
	tokenSvc services.TokenSvcFacade
}

func NewAuthHandler(authSvc services.AuthSvcFacade, tokenSvc services.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, tokenSvc: tokenSvc}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a visitor account and returns a fresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration payload"
// @Success      201 {object} dto.AuthResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		RespondMappedError(c, err, "Email already registered")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Log in with email and password
// @Description  Verifies credentials and returns a fresh token pair. A new
// @Description  login invalidates any previously issued refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login payload"
// @Success      200 {object} dto.AuthResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		RespondMappedError(c, err, "Invalid credentials")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Rotate the token pair
// @Description  Exchanges a valid refresh token for a new pair. Each refresh
// @Description  token can be used at most once.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshTokenRequest true "Refresh payload"
// @Success      200 {object} dto.RefreshResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// The subject is read without signature verification; the service-side
	// hash comparison is what authenticates the request.
	userID, err := h.tokenSvc.DecodeSubject(req.RefreshToken)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	resp, err := h.authSvc.RefreshTokens(c.Request.Context(), userID, req.RefreshToken)
	if err != nil {
		RespondMappedError(c, err, "Invalid refresh token")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Log out
// @Description  Invalidates the caller's refresh token. Idempotent.
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	if err := h.authSvc.Logout(c.Request.Context(), id.UserID); err != nil {
		RespondMappedError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}
