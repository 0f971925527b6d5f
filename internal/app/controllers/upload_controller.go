package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/middleware"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/filestorage"
)

// UploadController accepts image uploads for the admin surface
type UploadController struct {
	storage *filestorage.LocalStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(storage *filestorage.LocalStorage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

// uploadResponse carries the public URL of a stored image.
type uploadResponse struct {
	URL string `json:"url"`
}

// Upload stores an image under the given category, resizing it to the
// category's bounding box
// @Summary Upload image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param category path string true "Upload category" Enums(hero, site, leaders, events, news, projects, partners, communities, gallery, sessions)
// @Param file formData file true "Image file"
// @Success 201 {object} dto.APIResponse{data=uploadResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown category or bad file"
// @Router /admin/uploads/{category} [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	category := ctx.Param("category")
	if !filestorage.KnownCategory(category) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown upload category").
			WithDetails(category)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file field")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	url, err := c.storage.SaveImage(fileHeader, category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      uploadResponse{URL: url},
		Timestamp: time.Now(),
	})
}
