package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/ports/services"
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/dto"
)

// ProjectHandler handles portfolio project endpoints.
type ProjectHandler struct {
	projectSvc services.ProjectSvcFacade
}

func NewProjectHandler(projectSvc services.ProjectSvcFacade) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProjectRequest true "Project payload"
// @Success      201 {object} domain.Project
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	project, err := h.projectSvc.CreateProject(c.Request.Context(), req)
	if err != nil {
		RespondMappedError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// ListProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        category query string false "Filter by category" Enums(web, mobile, ai, backend)
// @Param        featured query bool   false "Filter by featured flag"
// @Success      200 {array} domain.Project
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var params dto.ListProjectsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	projects, err := h.projectSvc.ListProjects(c.Request.Context(), params)
	if err != nil {
		RespondMappedError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// SearchProjects godoc
// @Summary      Search projects by title or description
// @Tags         projects
// @Produce      json
// @Param        q query string true "Search term"
// @Success      200 {array} domain.Project
// @Router       /projects/search [get]
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		RespondError(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}
	projects, err := h.projectSvc.SearchProjects(c.Request.Context(), query)
	if err != nil {
		RespondMappedError(c, err, "Failed to search projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary      Get a project
// @Description  Returns the project and counts the view.
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} domain.Project
// @Failure      404 {object} dto.ErrorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectSvc.GetProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondMappedError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id      path string                   true "Project ID"
// @Param        request body dto.UpdateProjectRequest true "Fields to update"
// @Success      200 {object} domain.Project
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	project, err := h.projectSvc.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		RespondMappedError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectSvc.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		RespondMappedError(c, err, "Project not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// LikeProject godoc
// @Summary      Like a project
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} domain.Project
// @Failure      404 {object} dto.ErrorResponse
// @Router       /projects/{id}/like [post]
func (h *ProjectHandler) LikeProject(c *gin.Context) {
	project, err := h.projectSvc.LikeProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondMappedError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}
