package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
)

func TestBackgroundImageURLPrefersUpcomingEventImage(t *testing.T) {
	upcoming := []*models.Event{
		{Title: "No image yet"},
		{Title: "Indaba practice", Image: "/uploads/events/indaba.jpg"},
	}
	settings := &models.SiteSettings{BackgroundImage: "/uploads/site/bg.jpg"}

	assert.Equal(t, "/uploads/events/indaba.jpg", backgroundImageURL(upcoming, settings))
}

func TestBackgroundImageURLFallsBackToSettings(t *testing.T) {
	settings := &models.SiteSettings{BackgroundImage: "/uploads/site/bg.jpg"}

	assert.Equal(t, "/uploads/site/bg.jpg", backgroundImageURL(nil, settings))
	assert.Equal(t, "/uploads/site/bg.jpg", backgroundImageURL([]*models.Event{{}}, settings))
}

func TestBackgroundImageURLStaticDefault(t *testing.T) {
	assert.Equal(t, defaultBackgroundImage, backgroundImageURL(nil, nil))
	assert.Equal(t, defaultBackgroundImage, backgroundImageURL(nil, &models.SiteSettings{}))
}

func TestGroupCurrentLeadersBucketsAndFilters(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ended := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	leaders := []*models.Leader{
		{FullName: "A", Category: models.CategoryStudent},
		{FullName: "B", Category: models.CategoryExecutive},
		{FullName: "C", Category: models.CategoryFaculty},
		{FullName: "D", Category: models.CategoryStudent, EndDate: &ended},
	}

	groups := groupCurrentLeaders(leaders, now)

	assert.Len(t, groups, 3)
	assert.Equal(t, models.CategoryStudent, groups[0].Category)
	assert.Len(t, groups[0].Leaders, 1)
	assert.Equal(t, "A", groups[0].Leaders[0].FullName)
	assert.Len(t, groups[1].Leaders, 1)
	assert.Len(t, groups[2].Leaders, 1)
}

func TestGroupCurrentLeadersEmptyGroupsStayNonNil(t *testing.T) {
	groups := groupCurrentLeaders(nil, time.Now())

	assert.Len(t, groups, 3)
	for _, g := range groups {
		assert.NotNil(t, g.Leaders)
		assert.Empty(t, g.Leaders)
	}
}
