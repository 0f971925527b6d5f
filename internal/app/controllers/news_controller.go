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

// NewsController handles news posts
type NewsController struct {
	newsService *services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService *services.NewsService) *NewsController {
	return &NewsController{
		newsService: newsService,
	}
}

// GetPublishedNews returns published news posts, newest first
// @Summary Published news
// @Tags news
// @Produce json
// @Param limit query int false "Cap the number of posts; 0 returns all"
// @Success 200 {object} dto.APIResponse{data=[]models.News}
// @Router /news [get]
func (c *NewsController) GetPublishedNews(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		limit = 0
	}

	news, err := c.newsService.GetPublishedNews(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      news,
		Timestamp: time.Now(),
	})
}

// GetNewsByID returns a single news post
// @Summary Get news by ID
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse{data=models.News}
// @Failure 404 {object} dto.ErrorResponse "News post not found"
// @Router /news/{id} [get]
func (c *NewsController) GetNewsByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	news, err := c.newsService.GetNewsByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      news,
		Timestamp: time.Now(),
	})
}

// GetNewsBySlug returns a published news post by slug
// @Summary Get news by slug
// @Tags news
// @Produce json
// @Param slug path string true "News slug"
// @Success 200 {object} dto.APIResponse{data=models.News}
// @Failure 404 {object} dto.ErrorResponse "News post not found"
// @Router /news/slug/{slug} [get]
func (c *NewsController) GetNewsBySlug(ctx *gin.Context) {
	news, err := c.newsService.GetNewsBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      news,
		Timestamp: time.Now(),
	})
}

// GetAllNews returns every news post for the admin surface
// @Summary All news
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.News}
// @Router /admin/news [get]
func (c *NewsController) GetAllNews(ctx *gin.Context) {
	news, err := c.newsService.GetAllNews(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      news,
		Timestamp: time.Now(),
	})
}

// CreateNews creates a news post
// @Summary Create news
// @Description The slug is generated from the title when omitted
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.News true "News post"
// @Success 201 {object} dto.APIResponse{data=models.News}
// @Router /admin/news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var news models.News
	if !bindJSON(ctx, &news) {
		return
	}

	if err := c.newsService.CreateNews(ctx, &news); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      news,
		Timestamp: time.Now(),
	})
}

// UpdateNews updates a news post
// @Summary Update news
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param request body models.News true "News post"
// @Success 200 {object} dto.APIResponse{data=models.News}
// @Router /admin/news/{id} [put]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var news models.News
	if !bindJSON(ctx, &news) {
		return
	}
	news.ID = id

	if err := c.newsService.UpdateNews(ctx, &news); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      news,
		Timestamp: time.Now(),
	})
}

// DeleteNews deletes a news post
// @Summary Delete news
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/news/{id} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.newsService.DeleteNews(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "News post deleted"},
		Timestamp: time.Now(),
	})
}
