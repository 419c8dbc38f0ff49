package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// SkillHandler handles skill endpoints.
type SkillHandler struct {
	skillSvc services.SkillSvcFacade
}

func NewSkillHandler(skillSvc services.SkillSvcFacade) *SkillHandler {
	return &SkillHandler{skillSvc: skillSvc}
}

// CreateSkill godoc
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateSkillRequest true "Skill payload"
// @Success      201 {object} domain.Skill
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /skills [post]
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	skill, err := h.skillSvc.CreateSkill(c.Request.Context(), req)
	if err != nil {
		RespondMappedError(c, err, "Failed to create skill")
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// ListSkills godoc
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Param        category query string false "Filter by category" Enums(frontend, backend, database, devops, tools, ai, other)
// @Param        isActive query bool   false "Filter by active flag"
// @Success      200 {array} domain.Skill
// @Router       /skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	var params dto.ListSkillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	skills, err := h.skillSvc.ListSkills(c.Request.Context(), params)
	if err != nil {
		RespondMappedError(c, err, "Failed to list skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

// ListSkillsByCategory godoc
// @Summary      List skills in a category
// @Tags         skills
// @Produce      json
// @Param        category path string true "Skill category" Enums(frontend, backend, database, devops, tools, ai, other)
// @Success      200 {array} domain.Skill
// @Router       /skills/category/{category} [get]
func (h *SkillHandler) ListSkillsByCategory(c *gin.Context) {
	category := domain.SkillCategory(c.Param("category"))
	skills, err := h.skillSvc.ListSkillsByCategory(c.Request.Context(), category)
	if err != nil {
		RespondMappedError(c, err, "Failed to list skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

// ListSkillsByMinLevel godoc
// @Summary      List skills at or above a level
// @Tags         skills
// @Produce      json
// @Param        level path int true "Minimum level (0-100)"
// @Success      200 {array} domain.Skill
// @Failure      400 {object} dto.ErrorResponse
// @Router       /skills/level/{level} [get]
func (h *SkillHandler) ListSkillsByMinLevel(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < 0 || level > 100 {
		RespondError(c, http.StatusBadRequest, "Level must be an integer between 0 and 100")
		return
	}
	skills, err := h.skillSvc.ListSkillsByMinLevel(c.Request.Context(), level)
	if err != nil {
		RespondMappedError(c, err, "Failed to list skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

// GetSkillStats godoc
// @Summary      Skill statistics per category
// @Tags         skills
// @Produce      json
// @Success      200 {object} dto.SkillStatsResponse
// @Router       /skills/stats [get]
func (h *SkillHandler) GetSkillStats(c *gin.Context) {
	stats, err := h.skillSvc.GetSkillStats(c.Request.Context())
	if err != nil {
		RespondMappedError(c, err, "Failed to compute skill stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetSkill godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id path string true "Skill ID"
// @Success      200 {object} domain.Skill
// @Failure      404 {object} dto.ErrorResponse
// @Router       /skills/{id} [get]
func (h *SkillHandler) GetSkill(c *gin.Context) {
	skill, err := h.skillSvc.GetSkillByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondMappedError(c, err, "Skill not found")
		return
	}
	c.JSON(http.StatusOK, skill)
}

// UpdateSkill godoc
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id      path string                 true "Skill ID"
// @Param        request body dto.UpdateSkillRequest true "Fields to update"
// @Success      200 {object} domain.Skill
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /skills/{id} [patch]
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	var req dto.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	skill, err := h.skillSvc.UpdateSkill(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		RespondMappedError(c, err, "Skill not found")
		return
	}
	c.JSON(http.StatusOK, skill)
}

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id path string true "Skill ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /skills/{id} [delete]
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	if err := h.skillSvc.DeleteSkill(c.Request.Context(), c.Param("id")); err != nil {
		RespondMappedError(c, err, "Skill not found")
		return
	}
	c.Status(http.StatusNoContent)
}
