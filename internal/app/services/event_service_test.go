package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
)

func TestBuildEventFeedUpcomingPage(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	start := now.Add(49*time.Hour + 30*time.Minute)
	end := start.Add(2 * time.Hour)

	events := []*models.Event{{
		ID:         7,
		Title:      "IndabaX Warmup",
		Summary:    "Hands-on session",
		EventURL:   "https://example.com/register",
		Image:      "/uploads/events/warmup.jpg",
		Organizer:  "AI Club",
		EventStart: start,
		EventEnd:   &end,
	}}

	resp := buildEventFeed(FeedSectionUpcoming, 1, 2, events, 5, now)

	assert.Empty(t, resp.Error)
	assert.Len(t, resp.Events, 1)
	assert.Equal(t, "2026-08-30T13:30:00Z", resp.Events[0].EventStart)
	assert.Equal(t, "2026-08-30T15:30:00Z", resp.Events[0].EventEnd)
	assert.Equal(t, "2d 1h 30m", resp.Events[0].TimeUntilStart)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, int64(5), resp.TotalCount)
	assert.True(t, resp.HasNext)
	assert.False(t, resp.HasPrevious)
}

func TestBuildEventFeedPastHasNoCountdown(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	start := now.Add(-48 * time.Hour)
	end := now.Add(-46 * time.Hour)

	events := []*models.Event{{ID: 3, Title: "Past meetup", EventStart: start, EventEnd: &end}}

	resp := buildEventFeed(FeedSectionPast, 2, 1, events, 3, now)

	assert.Empty(t, resp.Events[0].TimeUntilStart)
	assert.True(t, resp.HasPrevious)
	assert.True(t, resp.HasNext)
}

func TestBuildEventFeedOutOfRangePage(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	resp := buildEventFeed(FeedSectionUpcoming, 4, 2, nil, 5, now)

	assert.Equal(t, "Invalid page.", resp.Error)
	assert.Empty(t, resp.Events)
	assert.Equal(t, 4, resp.Page)
	assert.Equal(t, 0, resp.TotalPages)
	assert.Equal(t, int64(0), resp.TotalCount)
	assert.False(t, resp.HasNext)
	assert.False(t, resp.HasPrevious)
}

func TestBuildEventFeedEmptyFirstPageIsNotAnError(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	resp := buildEventFeed(FeedSectionUpcoming, 1, 2, nil, 0, now)

	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.Events)
	assert.Equal(t, 0, resp.TotalPages)
}
