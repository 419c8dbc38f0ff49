package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
)

// GoogleOAuthHandler completes the Google login flow started by the frontend.
type GoogleOAuthHandler struct {
	oauthSvc services.GoogleOAuthSvcFacade
	authSvc  services.AuthSvcFacade
}

func NewGoogleOAuthHandler(oauthSvc services.GoogleOAuthSvcFacade, authSvc services.AuthSvcFacade) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{oauthSvc: oauthSvc, authSvc: authSvc}
}

// ExchangeCode godoc
// @Summary      Log in with Google
// @Description  Exchanges the OAuth authorization code, validates the Google
// @Description  ID token and returns a token pair for the matched or newly
// @Description  provisioned user.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.ExchangeCodeRequest true "Authorization code"
// @Success      200 {object} dto.AuthResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /auth/google [post]
func (h *GoogleOAuthHandler) ExchangeCode(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	token, err := h.oauthSvc.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		RespondMappedError(c, err, "Failed to exchange authorization code")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		RespondError(c, http.StatusUnauthorized, "Google response did not include an ID token")
		return
	}

	payload, err := h.oauthSvc.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		RespondMappedError(c, err, "Invalid Google ID token")
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		RespondError(c, http.StatusUnauthorized, "Google ID token did not include an email")
		return
	}

	resp, err := h.authSvc.LoginWithGoogle(ctx, email, name, payload.Subject)
	if err != nil {
		logger.Error("google login failed", "error", err)
		RespondMappedError(c, err, "Failed to log in with Google")
		return
	}
	c.JSON(http.StatusOK, resp)
}
