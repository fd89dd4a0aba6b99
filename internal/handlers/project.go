package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/flowboard/flowboard-api/internal/dto"
	"github.com/flowboard/flowboard-api/internal/response"
	"github.com/flowboard/flowboard-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,max=20"`
	Status      string `json:"status" binding:"omitempty,max=20"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,max=20"`
	Status      *string `json:"status" binding:"omitempty,max=20"`
}

// ListProjects returns all projects
//
// @Summary  List projects
// @Tags     Projects
// @Produce  json
// @Param    orderBy  query     string  false  "Sort field, prefix with - for descending"
// @Success  200      {object}  response.Envelope{data=[]dto.ProjectDTO}
// @Failure  400      {object}  response.Envelope
// @Router   /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context(), c.Query("orderBy"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToProjectDTOs(projects))
}

// GetProject returns a specific project by ID
//
// @Summary  Get project
// @Tags     Projects
// @Produce  json
// @Param    id   path      string  true  "Project ID"
// @Success  200  {object}  response.Envelope{data=dto.ProjectDTO}
// @Failure  404  {object}  response.Envelope
// @Router   /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToProjectDTO(*project))
}

// CreateProject creates a new project
//
// @Summary  Create project
// @Tags     Projects
// @Accept   json
// @Produce  json
// @Param    body  body      CreateProjectRequest  true  "Project"
// @Success  201   {object}  response.Envelope{data=dto.ProjectDTO}
// @Failure  400   {object}  response.Envelope
// @Router   /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Status:      req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, dto.ToProjectDTO(*project))
}

// UpdateProject applies the fields present in the body
//
// @Summary  Update project
// @Tags     Projects
// @Accept   json
// @Produce  json
// @Param    id    path      string                true  "Project ID"
// @Param    body  body      UpdateProjectRequest  true  "Fields to change"
// @Success  200   {object}  response.Envelope{data=dto.ProjectDTO}
// @Failure  404   {object}  response.Envelope
// @Router   /api/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Status:      req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToProjectDTO(*project))
}

// DeleteProject deletes a project
//
// @Summary  Delete project
// @Tags     Projects
// @Produce  json
// @Param    id   path      string  true  "Project ID"
// @Success  200  {object}  response.Envelope
// @Router   /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKMessage(c, "Project deleted successfully")
}
