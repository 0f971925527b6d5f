package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/helpers"
)

// Feed section names and their per_page defaults. The legacy feed
// clients page upcoming events two at a time and past events one at a
// time.
const (
	FeedSectionUpcoming = "upcoming"
	FeedSectionPast     = "past"

	DefaultUpcomingPerPage = 2
	DefaultPastPerPage     = 1
)

// Feed timestamps keep the original ISO-8601 wire format.
const feedTimeLayout = time.RFC3339

// EventService handles event-related operations
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

func (s *EventService) validateEvent(event *models.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if event.EventStart.IsZero() {
		return fmt.Errorf("%w: event start is required", apperrors.ErrValidationFailed)
	}
	if event.EventEnd != nil && event.EventEnd.Before(event.EventStart) {
		return fmt.Errorf("%w: event end cannot precede event start", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateEvent creates a new event
func (s *EventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if err := s.validateEvent(event); err != nil {
		return err
	}
	return s.eventRepo.Create(ctx, event)
}

// GetEventByID retrieves a published event by ID. Unpublished events
// are indistinguishable from missing ones on the public site.
func (s *EventService) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

// GetAllEvents retrieves every event for the admin surface
func (s *EventService) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

// GetEventsPage partitions published events into upcoming and past as
// of the given time. A running open-ended event appears in neither
// section.
func (s *EventService) GetEventsPage(ctx context.Context, now time.Time) (*dto.EventListResponse, error) {
	upcoming, err := s.eventRepo.GetUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	past, err := s.eventRepo.GetPast(ctx, now)
	if err != nil {
		return nil, err
	}

	return &dto.EventListResponse{
		Upcoming: upcoming,
		Past:     past,
	}, nil
}

// UpdateEvent updates an existing event
func (s *EventService) UpdateEvent(ctx context.Context, event *models.Event) error {
	if err := s.validateEvent(event); err != nil {
		return err
	}
	return s.eventRepo.Update(ctx, event)
}

// DeleteEvent deletes an event by ID
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

// Feed serves the legacy paginated events feed. The section selects
// upcoming or past events; rawPerPage is clamped to the feed range with
// a per-section default. A page past the end yields an envelope whose
// Error field is set; the caller still responds 200, which the legacy
// clients depend on.
func (s *EventService) Feed(ctx context.Context, now time.Time, section string, page int, rawPerPage string) (*dto.EventFeedResponse, error) {
	defaultPerPage := DefaultUpcomingPerPage
	if section == FeedSectionPast {
		defaultPerPage = DefaultPastPerPage
	} else {
		section = FeedSectionUpcoming
	}
	perPage := helpers.ClampPerPage(rawPerPage, defaultPerPage)

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	var events []*models.Event
	var totalCount int64
	var err error
	if section == FeedSectionPast {
		events, totalCount, err = s.eventRepo.GetPastPage(ctx, now, perPage, offset)
	} else {
		events, totalCount, err = s.eventRepo.GetUpcomingPage(ctx, now, perPage, offset)
	}
	if err != nil {
		return nil, err
	}

	return buildEventFeed(section, page, perPage, events, totalCount, now), nil
}

// buildEventFeed assembles the feed envelope. An empty page beyond the
// first reproduces the legacy pagination error: the Error field is set
// and the totals are zeroed, matching the original error body.
func buildEventFeed(section string, page, perPage int, events []*models.Event, totalCount int64, now time.Time) *dto.EventFeedResponse {
	resp := &dto.EventFeedResponse{
		Events:  []dto.EventFeedItem{},
		Page:    page,
		PerPage: perPage,
	}

	if len(events) == 0 && page > 1 {
		resp.Error = "Invalid page."
		return resp
	}

	resp.TotalPages = helpers.TotalPages(totalCount, perPage)
	resp.TotalCount = totalCount

	for _, event := range events {
		item := dto.EventFeedItem{
			ID:         event.ID,
			Title:      event.Title,
			Summary:    event.Summary,
			EventURL:   event.EventURL,
			ImageURL:   event.Image,
			Organizer:  event.Organizer,
			EventStart: event.EventStart.Format(feedTimeLayout),
		}
		if event.EventEnd != nil {
			item.EventEnd = event.EventEnd.Format(feedTimeLayout)
		}
		if section == FeedSectionUpcoming {
			item.TimeUntilStart = helpers.FormatTimeUntil(event.EventStart, now)
		}
		resp.Events = append(resp.Events, item)
	}

	resp.HasPrevious = page > 1
	resp.HasNext = page < resp.TotalPages

	return resp
}
