package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/services"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/middleware"
)

// SiteController serves the sitewide context, the composite home page
// and the multi-type search
type SiteController struct {
	siteService   *services.SiteService
	searchService *services.SearchService
}

// NewSiteController creates a new SiteController
func NewSiteController(siteService *services.SiteService, searchService *services.SearchService) *SiteController {
	return &SiteController{
		siteService:   siteService,
		searchService: searchService,
	}
}

// GetSiteContext returns the sitewide context
// @Summary Sitewide context
// @Description Returns the settings and navigation lists every page needs. Served from a short-TTL cache.
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SiteContext}
// @Router /site-context [get]
func (c *SiteController) GetSiteContext(ctx *gin.Context) {
	siteContext, err := c.siteService.GetSiteContext(ctx, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      siteContext,
		Timestamp: time.Now(),
	})
}

// GetHomePage returns the composite home page view-model
// @Summary Home page
// @Description Returns every section of the home page in one payload
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HomePage}
// @Router /home [get]
func (c *SiteController) GetHomePage(ctx *gin.Context) {
	home, err := c.siteService.GetHomePage(ctx, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      home,
		Timestamp: time.Now(),
	})
}

// Search runs the sitewide search
// @Summary Sitewide search
// @Description Searches leaders, albums and sessions. A blank query returns empty results.
// @Tags site
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResults}
// @Router /search [get]
func (c *SiteController) Search(ctx *gin.Context) {
	results, err := c.searchService.Search(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      results,
		Timestamp: time.Now(),
	})
}

// FlushCache drops the cached site context so the next read rebuilds it
// @Summary Flush site context cache
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/cache/site-context [delete]
func (c *SiteController) FlushCache(ctx *gin.Context) {
	c.siteService.FlushContextCache()

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Site context cache flushed"},
		Timestamp: time.Now(),
	})
}

// Health is the liveness probe
// @Summary Health check
// @Tags site
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *SiteController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
