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

// EventController handles event pages, the legacy feed and admin CRUD
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// GetEventsPage returns upcoming and past events for the events page
// @Summary Events page
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse}
// @Router /events [get]
func (c *EventController) GetEventsPage(ctx *gin.Context) {
	page, err := c.eventService.GetEventsPage(ctx, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      page,
		Timestamp: time.Now(),
	})
}

// GetEventByID returns a single event
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEventByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      event,
		Timestamp: time.Now(),
	})
}

// Feed serves the paginated event feed consumed by the home page widgets.
// The legacy contract applies: an out-of-range page is reported inside a
// 200 response, never as an HTTP error.
// @Summary Event feed
// @Tags events
// @Produce json
// @Param type query string false "Feed section" Enums(upcoming, past) default(upcoming)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page (1-10)"
// @Success 200 {object} dto.EventFeedResponse
// @Router /feeds/events [get]
func (c *EventController) Feed(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	resp, err := c.eventService.Feed(ctx, time.Now(), ctx.Query("type"), page, ctx.Query("per_page"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetAllEvents returns every event for the admin surface
// @Summary All events
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Event}
// @Router /admin/events [get]
func (c *EventController) GetAllEvents(ctx *gin.Context) {
	events, err := c.eventService.GetAllEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      events,
		Timestamp: time.Now(),
	})
}

// CreateEvent creates an event
// @Summary Create event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Event true "Event"
// @Success 201 {object} dto.APIResponse{data=models.Event}
// @Router /admin/events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var event models.Event
	if !bindJSON(ctx, &event) {
		return
	}

	if err := c.eventService.CreateEvent(ctx, &event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      event,
		Timestamp: time.Now(),
	})
}

// UpdateEvent updates an event
// @Summary Update event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body models.Event true "Event"
// @Success 200 {object} dto.APIResponse{data=models.Event}
// @Router /admin/events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var event models.Event
	if !bindJSON(ctx, &event) {
		return
	}
	event.ID = id

	if err := c.eventService.UpdateEvent(ctx, &event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      event,
		Timestamp: time.Now(),
	})
}

// DeleteEvent deletes an event
// @Summary Delete event
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Event deleted"},
		Timestamp: time.Now(),
	})
}
