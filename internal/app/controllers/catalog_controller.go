package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/services"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/middleware"
)

// CatalogController handles research areas and the resource library
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetResearchAreas returns the research areas in display order
// @Summary Research areas
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ResearchArea}
// @Router /research [get]
func (c *CatalogController) GetResearchAreas(ctx *gin.Context) {
	areas, err := c.catalogService.GetResearchAreas(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      areas,
		Timestamp: time.Now(),
	})
}

// GetResearchAreaByID returns a single research area
// @Summary Research area detail
// @Tags catalog
// @Produce json
// @Param id path int true "Research area ID"
// @Success 200 {object} dto.APIResponse{data=models.ResearchArea}
// @Failure 404 {object} dto.ErrorResponse
// @Router /research/{id} [get]
func (c *CatalogController) GetResearchAreaByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	area, err := c.catalogService.GetResearchAreaByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      area,
		Timestamp: time.Now(),
	})
}

// GetResourceCategories returns resource categories with their active links
// @Summary Resource library
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ResourceCategory}
// @Router /resources [get]
func (c *CatalogController) GetResourceCategories(ctx *gin.Context) {
	categories, err := c.catalogService.GetResourceCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      categories,
		Timestamp: time.Now(),
	})
}

// GetResourceCategoryBySlug returns a resource category with its links
// @Summary Resource category detail
// @Tags catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} dto.APIResponse{data=models.ResourceCategory}
// @Failure 404 {object} dto.ErrorResponse
// @Router /resources/{slug} [get]
func (c *CatalogController) GetResourceCategoryBySlug(ctx *gin.Context) {
	category, err := c.catalogService.GetResourceCategoryBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      category,
		Timestamp: time.Now(),
	})
}

// CreateResearchArea creates a research area
// @Summary Create research area
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ResearchArea true "Research area"
// @Success 201 {object} dto.APIResponse{data=models.ResearchArea}
// @Router /admin/research [post]
func (c *CatalogController) CreateResearchArea(ctx *gin.Context) {
	var area models.ResearchArea
	if !bindJSON(ctx, &area) {
		return
	}

	if err := c.catalogService.CreateResearchArea(ctx, &area); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      area,
		Timestamp: time.Now(),
	})
}

// UpdateResearchArea updates a research area
// @Summary Update research area
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Research area ID"
// @Param request body models.ResearchArea true "Research area"
// @Success 200 {object} dto.APIResponse{data=models.ResearchArea}
// @Router /admin/research/{id} [put]
func (c *CatalogController) UpdateResearchArea(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var area models.ResearchArea
	if !bindJSON(ctx, &area) {
		return
	}
	area.ID = id

	if err := c.catalogService.UpdateResearchArea(ctx, &area); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      area,
		Timestamp: time.Now(),
	})
}

// DeleteResearchArea deletes a research area
// @Summary Delete research area
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Research area ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/research/{id} [delete]
func (c *CatalogController) DeleteResearchArea(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteResearchArea(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Research area deleted"},
		Timestamp: time.Now(),
	})
}

// CreateResourceCategory creates a resource category
// @Summary Create resource category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ResourceCategory true "Resource category"
// @Success 201 {object} dto.APIResponse{data=models.ResourceCategory}
// @Router /admin/resources/categories [post]
func (c *CatalogController) CreateResourceCategory(ctx *gin.Context) {
	var category models.ResourceCategory
	if !bindJSON(ctx, &category) {
		return
	}

	if err := c.catalogService.CreateResourceCategory(ctx, &category); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      category,
		Timestamp: time.Now(),
	})
}

// UpdateResourceCategory updates a resource category
// @Summary Update resource category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body models.ResourceCategory true "Resource category"
// @Success 200 {object} dto.APIResponse{data=models.ResourceCategory}
// @Router /admin/resources/categories/{id} [put]
func (c *CatalogController) UpdateResourceCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var category models.ResourceCategory
	if !bindJSON(ctx, &category) {
		return
	}
	category.ID = id

	if err := c.catalogService.UpdateResourceCategory(ctx, &category); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      category,
		Timestamp: time.Now(),
	})
}

// DeleteResourceCategory deletes a resource category and its links
// @Summary Delete resource category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/resources/categories/{id} [delete]
func (c *CatalogController) DeleteResourceCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteResourceCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Resource category deleted"},
		Timestamp: time.Now(),
	})
}

// CreateResourceLink adds a link to a resource category
// @Summary Create resource link
// @Description Link titles must be unique within their category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ResourceLink true "Resource link"
// @Success 201 {object} dto.APIResponse{data=models.ResourceLink}
// @Failure 409 {object} dto.ErrorResponse "Title already used in category"
// @Router /admin/resources/links [post]
func (c *CatalogController) CreateResourceLink(ctx *gin.Context) {
	var link models.ResourceLink
	if !bindJSON(ctx, &link) {
		return
	}

	if err := c.catalogService.CreateResourceLink(ctx, &link); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      link,
		Timestamp: time.Now(),
	})
}

// UpdateResourceLink updates a resource link
// @Summary Update resource link
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Param request body models.ResourceLink true "Resource link"
// @Success 200 {object} dto.APIResponse{data=models.ResourceLink}
// @Router /admin/resources/links/{id} [put]
func (c *CatalogController) UpdateResourceLink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var link models.ResourceLink
	if !bindJSON(ctx, &link) {
		return
	}
	link.ID = id

	if err := c.catalogService.UpdateResourceLink(ctx, &link); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      link,
		Timestamp: time.Now(),
	})
}

// DeleteResourceLink deletes a resource link
// @Summary Delete resource link
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/resources/links/{id} [delete]
func (c *CatalogController) DeleteResourceLink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteResourceLink(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Resource link deleted"},
		Timestamp: time.Now(),
	})
}
