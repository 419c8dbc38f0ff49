package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/middleware"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userSvc services.UserSvcFacade
}

func NewUserHandler(userSvc services.UserSvcFacade) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// callerCanAccess reports whether the caller may act on the target user:
// admins on anyone, everyone on themselves.
func callerCanAccess(c *gin.Context, targetUserID string) bool {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		return false
	}
	return id.Role == domain.RoleAdmin || id.UserID == targetUserID
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        limit  query int false "Page size"   default(20)
// @Param        offset query int false "Page offset"  default(0)
// @Success      200 {object} dto.ListUsersResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	users, err := h.userSvc.ListUsers(c.Request.Context(), params)
	if err != nil {
		RespondMappedError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// GetUser godoc
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.UserResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	if !callerCanAccess(c, userID) {
		RespondError(c, http.StatusForbidden, "Insufficient permissions")
		return
	}
	user, err := h.userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		RespondMappedError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser godoc
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path string                true "User ID"
// @Param        request body dto.UpdateUserRequest true "Fields to update"
// @Success      200 {object} dto.UserResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("id")
	if !callerCanAccess(c, userID) {
		RespondError(c, http.StatusForbidden, "Insufficient permissions")
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	user, err := h.userSvc.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		RespondMappedError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      204
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userSvc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		RespondMappedError(c, err, "User not found")
		return
	}
	c.Status(http.StatusNoContent)
}
