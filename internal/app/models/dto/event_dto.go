package dto

import (
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
)

// EventFeedItem is one event in the paginated events feed. The countdown
// string is only present for upcoming events.
type EventFeedItem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	EventURL       string `json:"event_url"`
	ImageURL       string `json:"image_url"`
	Organizer      string `json:"organizer"`
	EventStart     string `json:"event_start"`
	EventEnd       string `json:"event_end"`
	TimeUntilStart string `json:"time_until_start,omitempty"`
}

// EventFeedResponse is the envelope for GET /api/events/. The legacy
// contract returns HTTP 200 with an error string for an out-of-range
// page, so the Error field doubles as the failure signal.
type EventFeedResponse struct {
	Events      []EventFeedItem `json:"events"`
	HasNext     bool            `json:"has_next"`
	HasPrevious bool            `json:"has_previous"`
	Page        int             `json:"page"`
	TotalPages  int             `json:"total_pages"`
	PerPage     int             `json:"per_page"`
	TotalCount  int64           `json:"total_count"`
	Error       string          `json:"error,omitempty"`
}

// EventListResponse groups the events page into its two sections.
type EventListResponse struct {
	Upcoming []*models.Event `json:"upcoming"`
	Past     []*models.Event `json:"past"`
}
