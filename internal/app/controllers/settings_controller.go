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

// SettingsController serves the singleton site settings and about page
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetAbout returns the about page with objectives and affiliations.
// A site whose about page was never configured answers with a null
// payload, not an error.
// @Summary About page
// @Tags content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.AboutPage}
// @Router /about [get]
func (c *SettingsController) GetAbout(ctx *gin.Context) {
	page, err := c.settingsService.GetAbout(ctx)
	respondSingleton(ctx, page, err)
}

// GetSettings returns the site settings for the admin surface
// @Summary Get site settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.SiteSettings}
// @Failure 404 {object} dto.ErrorResponse "Settings not configured"
// @Router /admin/site-settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.GetSettings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      settings,
		Timestamp: time.Now(),
	})
}

// SaveSettings writes the site settings
// @Summary Save site settings
// @Description Creates the settings row the first time, updates it afterwards
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SiteSettings true "Site settings"
// @Success 200 {object} dto.APIResponse{data=models.SiteSettings}
// @Router /admin/site-settings [put]
func (c *SettingsController) SaveSettings(ctx *gin.Context) {
	var settings models.SiteSettings
	if !bindJSON(ctx, &settings) {
		return
	}

	if err := c.settingsService.SaveSettings(ctx, &settings); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      settings,
		Timestamp: time.Now(),
	})
}

// CreateSettings inserts the site settings row
// @Summary Create site settings
// @Description Rejected with 409 when a settings row already exists
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SiteSettings true "Site settings"
// @Success 201 {object} dto.APIResponse{data=models.SiteSettings}
// @Failure 409 {object} dto.ErrorResponse "Settings already exist"
// @Router /admin/site-settings [post]
func (c *SettingsController) CreateSettings(ctx *gin.Context) {
	var settings models.SiteSettings
	if !bindJSON(ctx, &settings) {
		return
	}

	if err := c.settingsService.CreateSettings(ctx, &settings); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      settings,
		Timestamp: time.Now(),
	})
}

// GetAboutAdmin returns the about page for editing. Unlike the public
// route, a missing row is a 404 here so the editor knows to create it.
// @Summary Get about page (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.AboutPage}
// @Failure 404 {object} dto.ErrorResponse "About page not configured"
// @Router /admin/about [get]
func (c *SettingsController) GetAboutAdmin(ctx *gin.Context) {
	page, err := c.settingsService.GetAbout(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      page,
		Timestamp: time.Now(),
	})
}

// SaveAbout writes the about page and its child sections
// @Summary Save about page
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AboutPage true "About page"
// @Success 200 {object} dto.APIResponse{data=models.AboutPage}
// @Router /admin/about [put]
func (c *SettingsController) SaveAbout(ctx *gin.Context) {
	var page models.AboutPage
	if !bindJSON(ctx, &page) {
		return
	}

	if err := c.settingsService.SaveAbout(ctx, &page); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      page,
		Timestamp: time.Now(),
	})
}
