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

// PartnerController handles partners and community outreach programmes
type PartnerController struct {
	partnerService *services.PartnerService
}

// NewPartnerController creates a new PartnerController
func NewPartnerController(partnerService *services.PartnerService) *PartnerController {
	return &PartnerController{
		partnerService: partnerService,
	}
}

// GetActivePartners returns active partners grouped by type
// @Summary Active partners
// @Tags partners
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Partner}
// @Router /partners [get]
func (c *PartnerController) GetActivePartners(ctx *gin.Context) {
	partners, err := c.partnerService.GetActivePartners(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      partners,
		Timestamp: time.Now(),
	})
}

// GetActiveCommunities returns active community outreach programmes
// @Summary Active communities
// @Tags partners
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CommunityOutreach}
// @Router /communities [get]
func (c *PartnerController) GetActiveCommunities(ctx *gin.Context) {
	communities, err := c.partnerService.GetActiveCommunities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      communities,
		Timestamp: time.Now(),
	})
}

// GetCommunityBySlug returns a single community outreach programme
// @Summary Community detail
// @Tags partners
// @Produce json
// @Param slug path string true "Community slug"
// @Success 200 {object} dto.APIResponse{data=models.CommunityOutreach}
// @Failure 404 {object} dto.ErrorResponse
// @Router /communities/{slug} [get]
func (c *PartnerController) GetCommunityBySlug(ctx *gin.Context) {
	community, err := c.partnerService.GetCommunityBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      community,
		Timestamp: time.Now(),
	})
}

// GetAllPartners returns every partner for the admin surface
// @Summary All partners
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Partner}
// @Router /admin/partners [get]
func (c *PartnerController) GetAllPartners(ctx *gin.Context) {
	partners, err := c.partnerService.GetAllPartners(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      partners,
		Timestamp: time.Now(),
	})
}

// CreatePartner creates a partner
// @Summary Create partner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Partner true "Partner"
// @Success 201 {object} dto.APIResponse{data=models.Partner}
// @Router /admin/partners [post]
func (c *PartnerController) CreatePartner(ctx *gin.Context) {
	var partner models.Partner
	if !bindJSON(ctx, &partner) {
		return
	}

	if err := c.partnerService.CreatePartner(ctx, &partner); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      partner,
		Timestamp: time.Now(),
	})
}

// UpdatePartner updates a partner
// @Summary Update partner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Partner ID"
// @Param request body models.Partner true "Partner"
// @Success 200 {object} dto.APIResponse{data=models.Partner}
// @Router /admin/partners/{id} [put]
func (c *PartnerController) UpdatePartner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var partner models.Partner
	if !bindJSON(ctx, &partner) {
		return
	}
	partner.ID = id

	if err := c.partnerService.UpdatePartner(ctx, &partner); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      partner,
		Timestamp: time.Now(),
	})
}

// DeletePartner deletes a partner
// @Summary Delete partner
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Partner ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/partners/{id} [delete]
func (c *PartnerController) DeletePartner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.partnerService.DeletePartner(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Partner deleted"},
		Timestamp: time.Now(),
	})
}

// GetAllCommunities returns every community programme for the admin surface
// @Summary All communities
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CommunityOutreach}
// @Router /admin/communities [get]
func (c *PartnerController) GetAllCommunities(ctx *gin.Context) {
	communities, err := c.partnerService.GetAllCommunities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      communities,
		Timestamp: time.Now(),
	})
}

// CreateCommunity creates a community programme
// @Summary Create community
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CommunityOutreach true "Community"
// @Success 201 {object} dto.APIResponse{data=models.CommunityOutreach}
// @Router /admin/communities [post]
func (c *PartnerController) CreateCommunity(ctx *gin.Context) {
	var community models.CommunityOutreach
	if !bindJSON(ctx, &community) {
		return
	}

	if err := c.partnerService.CreateCommunity(ctx, &community); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      community,
		Timestamp: time.Now(),
	})
}

// UpdateCommunity updates a community programme
// @Summary Update community
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Param request body models.CommunityOutreach true "Community"
// @Success 200 {object} dto.APIResponse{data=models.CommunityOutreach}
// @Router /admin/communities/{id} [put]
func (c *PartnerController) UpdateCommunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var community models.CommunityOutreach
	if !bindJSON(ctx, &community) {
		return
	}
	community.ID = id

	if err := c.partnerService.UpdateCommunity(ctx, &community); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      community,
		Timestamp: time.Now(),
	})
}

// DeleteCommunity deletes a community programme
// @Summary Delete community
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/communities/{id} [delete]
func (c *PartnerController) DeleteCommunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.partnerService.DeleteCommunity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Community deleted"},
		Timestamp: time.Now(),
	})
}
