package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/services"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/middleware"
)

// ProjectController handles projects and the legacy project feed
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// GetPublishedProjects returns published projects
// @Summary Published projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Project}
// @Router /projects [get]
func (c *ProjectController) GetPublishedProjects(ctx *gin.Context) {
	projects, err := c.projectService.GetPublishedProjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      projects,
		Timestamp: time.Now(),
	})
}

// GetProjectBySlug returns a published project by slug
// @Summary Get project by slug
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{slug} [get]
func (c *ProjectController) GetProjectBySlug(ctx *gin.Context) {
	project, err := c.projectService.GetProjectBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      project,
		Timestamp: time.Now(),
	})
}

// Feed serves the paginated project feed. Page size is fixed at three
// and an out-of-range page comes back inside a 200 response.
// @Summary Project feed
// @Tags projects
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.ProjectFeedResponse
// @Router /feeds/projects [get]
func (c *ProjectController) Feed(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	resp, err := c.projectService.Feed(ctx, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetAllProjects returns every project for the admin surface
// @Summary All projects
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Project}
// @Router /admin/projects [get]
func (c *ProjectController) GetAllProjects(ctx *gin.Context) {
	projects, err := c.projectService.GetAllProjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      projects,
		Timestamp: time.Now(),
	})
}

// GetProjectByID returns a single project for editing
// @Summary Get project by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Router /admin/projects/{id} [get]
func (c *ProjectController) GetProjectByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	project, err := c.projectService.GetProjectByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      project,
		Timestamp: time.Now(),
	})
}

// CreateProject creates a project
// @Summary Create project
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Project true "Project"
// @Success 201 {object} dto.APIResponse{data=models.Project}
// @Router /admin/projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var project models.Project
	if !bindJSON(ctx, &project) {
		return
	}

	if err := c.projectService.CreateProject(ctx, &project); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      project,
		Timestamp: time.Now(),
	})
}

// UpdateProject updates a project
// @Summary Update project
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body models.Project true "Project"
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Router /admin/projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var project models.Project
	if !bindJSON(ctx, &project) {
		return
	}
	project.ID = id

	if err := c.projectService.UpdateProject(ctx, &project); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      project,
		Timestamp: time.Now(),
	})
}

// DeleteProject deletes a project
// @Summary Delete project
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.projectService.DeleteProject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Project deleted"},
		Timestamp: time.Now(),
	})
}
