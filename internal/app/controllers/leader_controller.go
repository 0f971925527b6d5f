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

// LeaderController handles leader-related endpoints
type LeaderController struct {
	leaderService *services.LeaderService
}

// NewLeaderController creates a new LeaderController
func NewLeaderController(leaderService *services.LeaderService) *LeaderController {
	return &LeaderController{
		leaderService: leaderService,
	}
}

// GetCurrentLeaders returns current leaders grouped by category
// @Summary Current leaders
// @Description Leaders whose term has not ended, grouped into the three page sections
// @Tags leaders
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.LeadersPage}
// @Router /leaders [get]
func (c *LeaderController) GetCurrentLeaders(ctx *gin.Context) {
	page, err := c.leaderService.GetCurrentLeaders(ctx, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      page,
		Timestamp: time.Now(),
	})
}

// GetAllLeaders returns every leader, past terms included
// @Summary All leaders
// @Tags leaders
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Leader}
// @Router /leaders/all [get]
func (c *LeaderController) GetAllLeaders(ctx *gin.Context) {
	leaders, err := c.leaderService.GetAllLeaders(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      leaders,
		Timestamp: time.Now(),
	})
}

// GetLeaderByID returns a single leader
// @Summary Get leader by ID
// @Tags leaders
// @Produce json
// @Param id path int true "Leader ID"
// @Success 200 {object} dto.APIResponse{data=models.Leader}
// @Failure 404 {object} dto.ErrorResponse "Leader not found"
// @Router /leaders/{id} [get]
func (c *LeaderController) GetLeaderByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	leader, err := c.leaderService.GetLeaderByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      leader,
		Timestamp: time.Now(),
	})
}

// CreateLeader creates a leader
// @Summary Create leader
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Leader true "Leader"
// @Success 201 {object} dto.APIResponse{data=models.Leader}
// @Router /admin/leaders [post]
func (c *LeaderController) CreateLeader(ctx *gin.Context) {
	var leader models.Leader
	if !bindJSON(ctx, &leader) {
		return
	}

	if err := c.leaderService.CreateLeader(ctx, &leader); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      leader,
		Timestamp: time.Now(),
	})
}

// UpdateLeader updates a leader
// @Summary Update leader
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leader ID"
// @Param request body models.Leader true "Leader"
// @Success 200 {object} dto.APIResponse{data=models.Leader}
// @Router /admin/leaders/{id} [put]
func (c *LeaderController) UpdateLeader(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var leader models.Leader
	if !bindJSON(ctx, &leader) {
		return
	}
	leader.ID = id

	if err := c.leaderService.UpdateLeader(ctx, &leader); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      leader,
		Timestamp: time.Now(),
	})
}

// DeleteLeader deletes a leader
// @Summary Delete leader
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leader ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/leaders/{id} [delete]
func (c *LeaderController) DeleteLeader(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.leaderService.DeleteLeader(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Leader deleted"},
		Timestamp: time.Now(),
	})
}
