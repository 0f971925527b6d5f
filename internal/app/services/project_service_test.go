package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
)

func TestBuildProjectFeedPage(t *testing.T) {
	projects := []*models.Project{{
		ID:          11,
		Title:       "Crop Disease Classifier",
		Summary:     "CNN for cassava leaves",
		Image:       "/uploads/projects/cassava.jpg",
		URL:         "https://example.com/cassava",
		PublishDate: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}}

	resp := buildProjectFeed(1, projects, 7)

	assert.Empty(t, resp.Error)
	assert.Len(t, resp.Projects, 1)
	assert.Equal(t, "2026-03-14", resp.Projects[0].PublishDate)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, int64(7), resp.TotalCount)
	assert.Equal(t, ProjectFeedPerPage, resp.PerPage)
	assert.True(t, resp.HasNext)
	assert.False(t, resp.HasPrevious)
}

func TestBuildProjectFeedOutOfRangePage(t *testing.T) {
	resp := buildProjectFeed(5, nil, 7)

	assert.Equal(t, "Invalid page.", resp.Error)
	assert.Empty(t, resp.Projects)
	assert.Equal(t, 5, resp.Page)
	assert.Equal(t, 0, resp.TotalPages)
	assert.Equal(t, int64(0), resp.TotalCount)
	assert.False(t, resp.HasNext)
	assert.False(t, resp.HasPrevious)
}
