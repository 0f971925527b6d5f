package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/middleware"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

// parseIDParam reads a numeric path parameter, writing the 400 response
// itself on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// respondSingleton writes a singleton payload. A row that was never
// configured responds 200 with a null data field rather than a 404;
// the public pages render fine without it.
func respondSingleton(ctx *gin.Context, data interface{}, err error) {
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}

// bindJSON binds the request body, writing the 400 response itself on
// failure.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
