package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/services"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/middleware"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/helpers"
)

// JoinController handles the public membership form and its admin inbox
type JoinController struct {
	joinService *services.JoinService
}

// NewJoinController creates a new JoinController
func NewJoinController(joinService *services.JoinService) *JoinController {
	return &JoinController{
		joinService: joinService,
	}
}

// Submit accepts a membership application
// @Summary Submit join request
// @Description Accepts JSON or form posts. Field errors come back as a
// @Description per-field list so the form can highlight each one.
// @Tags join
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.JoinRequestForm true "Application"
// @Success 201 {object} dto.APIResponse{data=models.JoinRequest}
// @Failure 400 {object} dto.ValidationErrors
// @Router /join-requests [post]
func (c *JoinController) Submit(ctx *gin.Context) {
	var form dto.JoinRequestForm
	if err := ctx.ShouldBind(&form); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, validationErrs, err := c.joinService.Submit(ctx, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if validationErrs != nil {
		ctx.JSON(http.StatusBadRequest, validationErrs)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// List returns a page of join requests, newest first
// @Summary List join requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.JoinRequest}
// @Router /admin/join-requests [get]
func (c *JoinController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	requests, total, err := c.joinService.List(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data":       requests,
		"pagination": helpers.NewPaginationInfo(total, page, size),
		"timestamp":  time.Now(),
	})
}

// Delete removes a processed join request
// @Summary Delete join request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/join-requests/{id} [delete]
func (c *JoinController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.joinService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Join request deleted"},
		Timestamp: time.Now(),
	})
}
