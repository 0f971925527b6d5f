package dto

// ProjectFeedItem is one project in the paginated projects feed.
type ProjectFeedItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"image_url"`
	PublishDate string `json:"publish_date"`
	URL         string `json:"url"`
}

// ProjectFeedResponse is the envelope for GET /api/projects/. Same
// legacy 200-with-error contract as the events feed.
type ProjectFeedResponse struct {
	Projects    []ProjectFeedItem `json:"projects"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
	Page        int               `json:"page"`
	TotalPages  int               `json:"total_pages"`
	PerPage     int               `json:"per_page"`
	TotalCount  int64             `json:"total_count"`
	Error       string            `json:"error,omitempty"`
}
