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

// SessionController handles club sessions and their speaker links
type SessionController struct {
	sessionService *services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService *services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// sessionRequest is the admin payload; speakers are sent as leader IDs.
type sessionRequest struct {
	models.Session
	SpeakerIDs []int64 `json:"speakerIds"`
}

// GetPublishedSessions returns published sessions with speakers and images
// @Summary Published sessions
// @Tags sessions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Session}
// @Router /sessions [get]
func (c *SessionController) GetPublishedSessions(ctx *gin.Context) {
	sessions, err := c.sessionService.GetPublishedSessions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessions,
		Timestamp: time.Now(),
	})
}

// GetSessionByID returns a single session
// @Summary Get session by ID
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=models.Session}
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSessionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.sessionService.GetSessionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// GetAllSessions returns every session for the admin surface
// @Summary All sessions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Session}
// @Router /admin/sessions [get]
func (c *SessionController) GetAllSessions(ctx *gin.Context) {
	sessions, err := c.sessionService.GetAllSessions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessions,
		Timestamp: time.Now(),
	})
}

// CreateSession creates a session
// @Summary Create session
// @Description Speaker IDs must reference existing leaders
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body sessionRequest true "Session"
// @Success 201 {object} dto.APIResponse{data=models.Session}
// @Router /admin/sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req sessionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.sessionService.CreateSession(ctx, &req.Session, req.SpeakerIDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      req.Session,
		Timestamp: time.Now(),
	})
}

// UpdateSession updates a session and replaces its speaker links
// @Summary Update session
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param request body sessionRequest true "Session"
// @Success 200 {object} dto.APIResponse{data=models.Session}
// @Router /admin/sessions/{id} [put]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req sessionRequest
	if !bindJSON(ctx, &req) {
		return
	}
	req.Session.ID = id

	if err := c.sessionService.UpdateSession(ctx, &req.Session, req.SpeakerIDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      req.Session,
		Timestamp: time.Now(),
	})
}

// DeleteSession deletes a session
// @Summary Delete session
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.sessionService.DeleteSession(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Session deleted"},
		Timestamp: time.Now(),
	})
}

// AddImage attaches an uploaded image to a session
// @Summary Add session image
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param request body models.SessionImage true "Image"
// @Success 201 {object} dto.APIResponse{data=models.SessionImage}
// @Router /admin/sessions/{id}/images [post]
func (c *SessionController) AddImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var image models.SessionImage
	if !bindJSON(ctx, &image) {
		return
	}
	image.SessionID = id

	if err := c.sessionService.AddImage(ctx, &image); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      image,
		Timestamp: time.Now(),
	})
}

// DeleteImage removes a session image and its stored file
// @Summary Delete session image
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param imageId path int true "Image ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/sessions/images/{imageId} [delete]
func (c *SessionController) DeleteImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "imageId")
	if !ok {
		return
	}

	if err := c.sessionService.DeleteImage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Image deleted"},
		Timestamp: time.Now(),
	})
}
