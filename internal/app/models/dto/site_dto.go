package dto

import (
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
)

// SiteContext carries the sitewide values every page needs: settings
// plus the navigation lists. Served through a short-TTL cache, so edits
// may take up to the TTL to show.
type SiteContext struct {
	Settings           *models.SiteSettings        `json:"settings"`
	AboutPage          *models.AboutPage           `json:"aboutPage"`
	LatestNews         []*models.News              `json:"latestNews"`
	UpcomingEvents     []*models.Event             `json:"upcomingEvents"`
	ResearchAreas      []*models.ResearchArea      `json:"researchAreas"`
	ResourceCategories []*models.ResourceCategory  `json:"resourceCategories"`
	Communities        []*models.CommunityOutreach `json:"communities"`
	FeaturedProjects   []*models.Project           `json:"featuredProjects"`
	HeroSlides         []*models.HeroSlide         `json:"heroSlides"`
}

// LeaderGroup is one category section of the leaders page.
type LeaderGroup struct {
	Category models.LeaderCategory `json:"category"`
	Label    string                `json:"label"`
	Leaders  []*models.Leader      `json:"leaders"`
}

// HomePage is the composite view-model for the home page. Each list is
// fetched independently; none depends on another.
type HomePage struct {
	Settings            *models.SiteSettings        `json:"settings"`
	HeroSlides          []*models.HeroSlide         `json:"heroSlides"`
	Pillars             []*models.Pillar            `json:"pillars"`
	UpcomingEvents      []*models.Event             `json:"upcomingEvents"`
	PastEvents          []*models.Event             `json:"pastEvents"`
	LatestNews          []*models.News              `json:"latestNews"`
	FeaturedProjects    []*models.Project           `json:"featuredProjects"`
	FeaturedCommunities []*models.CommunityOutreach `json:"featuredCommunities"`
	Partners            []*models.Partner           `json:"partners"`
	LeaderGroups        []LeaderGroup               `json:"leaderGroups"`
	GalleryImages       []*models.GalleryImage      `json:"galleryImages"`
	BackgroundImageURL  string                      `json:"backgroundImageUrl"`
}

// LeadersPage groups current leaders for the dedicated leaders page.
type LeadersPage struct {
	StudentLeaders []*models.Leader `json:"studentLeaders"`
	ExecutiveBoard []*models.Leader `json:"executiveBoard"`
	FacultyMentors []*models.Leader `json:"facultyMentors"`
}
