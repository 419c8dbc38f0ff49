package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/apperrors"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// StatusFromError maps service-layer sentinel errors to HTTP status codes.
// Anything unrecognized is a 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the uniform error body with the given status and message.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewErrorResponse(status, c.Request.URL.Path, c.Request.Method, message))
}

// RespondMappedError maps err to a status and writes message. Internal errors
// get a generic message so no store detail leaks to clients.
func RespondMappedError(c *gin.Context, err error, message string) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	RespondError(c, status, message)
}
