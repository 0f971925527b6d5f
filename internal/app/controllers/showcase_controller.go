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

// ShowcaseController manages hero slides and pillars on the admin surface
type ShowcaseController struct {
	showcaseService *services.ShowcaseService
}

// NewShowcaseController creates a new ShowcaseController
func NewShowcaseController(showcaseService *services.ShowcaseService) *ShowcaseController {
	return &ShowcaseController{
		showcaseService: showcaseService,
	}
}

// GetAllHeroSlides returns every hero slide, inactive ones included
// @Summary All hero slides
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.HeroSlide}
// @Router /admin/hero-slides [get]
func (c *ShowcaseController) GetAllHeroSlides(ctx *gin.Context) {
	slides, err := c.showcaseService.GetAllHeroSlides(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      slides,
		Timestamp: time.Now(),
	})
}

// CreateHeroSlide creates a hero slide
// @Summary Create hero slide
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.HeroSlide true "Hero slide"
// @Success 201 {object} dto.APIResponse{data=models.HeroSlide}
// @Router /admin/hero-slides [post]
func (c *ShowcaseController) CreateHeroSlide(ctx *gin.Context) {
	var slide models.HeroSlide
	if !bindJSON(ctx, &slide) {
		return
	}

	if err := c.showcaseService.CreateHeroSlide(ctx, &slide); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      slide,
		Timestamp: time.Now(),
	})
}

// UpdateHeroSlide updates a hero slide
// @Summary Update hero slide
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slide ID"
// @Param request body models.HeroSlide true "Hero slide"
// @Success 200 {object} dto.APIResponse{data=models.HeroSlide}
// @Router /admin/hero-slides/{id} [put]
func (c *ShowcaseController) UpdateHeroSlide(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var slide models.HeroSlide
	if !bindJSON(ctx, &slide) {
		return
	}
	slide.ID = id

	if err := c.showcaseService.UpdateHeroSlide(ctx, &slide); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      slide,
		Timestamp: time.Now(),
	})
}

// DeleteHeroSlide deletes a hero slide
// @Summary Delete hero slide
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slide ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/hero-slides/{id} [delete]
func (c *ShowcaseController) DeleteHeroSlide(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.showcaseService.DeleteHeroSlide(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Hero slide deleted"},
		Timestamp: time.Now(),
	})
}

// GetPillars returns the pillars in display order
// @Summary All pillars
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Pillar}
// @Router /admin/pillars [get]
func (c *ShowcaseController) GetPillars(ctx *gin.Context) {
	pillars, err := c.showcaseService.GetPillars(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      pillars,
		Timestamp: time.Now(),
	})
}

// CreatePillar creates a pillar
// @Summary Create pillar
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Pillar true "Pillar"
// @Success 201 {object} dto.APIResponse{data=models.Pillar}
// @Router /admin/pillars [post]
func (c *ShowcaseController) CreatePillar(ctx *gin.Context) {
	var pillar models.Pillar
	if !bindJSON(ctx, &pillar) {
		return
	}

	if err := c.showcaseService.CreatePillar(ctx, &pillar); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      pillar,
		Timestamp: time.Now(),
	})
}

// UpdatePillar updates a pillar
// @Summary Update pillar
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pillar ID"
// @Param request body models.Pillar true "Pillar"
// @Success 200 {object} dto.APIResponse{data=models.Pillar}
// @Router /admin/pillars/{id} [put]
func (c *ShowcaseController) UpdatePillar(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var pillar models.Pillar
	if !bindJSON(ctx, &pillar) {
		return
	}
	pillar.ID = id

	if err := c.showcaseService.UpdatePillar(ctx, &pillar); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      pillar,
		Timestamp: time.Now(),
	})
}

// DeletePillar deletes a pillar
// @Summary Delete pillar
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pillar ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/pillars/{id} [delete]
func (c *ShowcaseController) DeletePillar(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.showcaseService.DeletePillar(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Pillar deleted"},
		Timestamp: time.Now(),
	})
}
