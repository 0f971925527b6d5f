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

// GalleryController handles photo albums and their images
type GalleryController struct {
	galleryService *services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService *services.GalleryService) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

// GetPublishedAlbums returns published albums, newest first
// @Summary Published albums
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Album}
// @Router /albums [get]
func (c *GalleryController) GetPublishedAlbums(ctx *gin.Context) {
	albums, err := c.galleryService.GetPublishedAlbums(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      albums,
		Timestamp: time.Now(),
	})
}

// GetAlbumByID returns an album with its images
// @Summary Get album by ID
// @Tags gallery
// @Produce json
// @Param id path int true "Album ID"
// @Success 200 {object} dto.APIResponse{data=models.Album}
// @Failure 404 {object} dto.ErrorResponse "Album not found"
// @Router /albums/{id} [get]
func (c *GalleryController) GetAlbumByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	album, err := c.galleryService.GetAlbumByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      album,
		Timestamp: time.Now(),
	})
}

// GetAllAlbums returns every album for the admin surface
// @Summary All albums
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Album}
// @Router /admin/albums [get]
func (c *GalleryController) GetAllAlbums(ctx *gin.Context) {
	albums, err := c.galleryService.GetAllAlbums(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      albums,
		Timestamp: time.Now(),
	})
}

// CreateAlbum creates an album
// @Summary Create album
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Album true "Album"
// @Success 201 {object} dto.APIResponse{data=models.Album}
// @Router /admin/albums [post]
func (c *GalleryController) CreateAlbum(ctx *gin.Context) {
	var album models.Album
	if !bindJSON(ctx, &album) {
		return
	}

	if err := c.galleryService.CreateAlbum(ctx, &album); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      album,
		Timestamp: time.Now(),
	})
}

// UpdateAlbum updates an album
// @Summary Update album
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Param request body models.Album true "Album"
// @Success 200 {object} dto.APIResponse{data=models.Album}
// @Router /admin/albums/{id} [put]
func (c *GalleryController) UpdateAlbum(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var album models.Album
	if !bindJSON(ctx, &album) {
		return
	}
	album.ID = id

	if err := c.galleryService.UpdateAlbum(ctx, &album); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      album,
		Timestamp: time.Now(),
	})
}

// DeleteAlbum deletes an album, its images and their stored files
// @Summary Delete album
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/albums/{id} [delete]
func (c *GalleryController) DeleteAlbum(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.galleryService.DeleteAlbum(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Album deleted"},
		Timestamp: time.Now(),
	})
}

// AddImage attaches an uploaded image to an album
// @Summary Add album image
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Param request body models.GalleryImage true "Image"
// @Success 201 {object} dto.APIResponse{data=models.GalleryImage}
// @Router /admin/albums/{id}/images [post]
func (c *GalleryController) AddImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var image models.GalleryImage
	if !bindJSON(ctx, &image) {
		return
	}
	image.AlbumID = id

	if err := c.galleryService.AddImage(ctx, &image); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      image,
		Timestamp: time.Now(),
	})
}

// DeleteImage removes an album image and its stored file
// @Summary Delete album image
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param imageId path int true "Image ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/albums/images/{imageId} [delete]
func (c *GalleryController) DeleteImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "imageId")
	if !ok {
		return
	}

	if err := c.galleryService.DeleteImage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Image deleted"},
		Timestamp: time.Now(),
	})
}
