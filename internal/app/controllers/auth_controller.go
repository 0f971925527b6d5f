package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/services"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/middleware"
)

// AuthController handles admin authentication
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// changePasswordRequest is the change-password payload.
type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// Login authenticates an admin and returns a token pair
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account disabled"
// @Router /admin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      tokens,
		Timestamp: time.Now(),
	})
}

// Me returns the authenticated admin's profile
// @Summary Current admin
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.AdminUser}
// @Router /admin/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	adminID := middleware.AdminIDFromContext(ctx)

	admin, err := c.authService.GetAdmin(ctx, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      admin,
		Timestamp: time.Now(),
	})
}

// ChangePassword updates the authenticated admin's password
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body changePasswordRequest true "Passwords"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Current password incorrect"
// @Router /admin/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req changePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	adminID := middleware.AdminIDFromContext(ctx)
	if err := c.authService.ChangePassword(ctx, adminID, req.CurrentPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Password changed"},
		Timestamp: time.Now(),
	})
}
