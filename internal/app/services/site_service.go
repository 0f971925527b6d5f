package services

import (
	"context"
	"errors"
	"time"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/sitecache"
)

// How many items the sitewide context and home page carry per list.
// These feed the navbar, footer and home page sections.
const (
	contextNewsLimit       = 3
	contextEventsLimit     = 3
	contextHeroSlideLimit  = 5
	featuredProjectLimit   = 5
	homeNewsLimit          = 3
	homeUpcomingEventLimit = 6
	homePastEventLimit     = 6
	homeGalleryImageLimit  = 20
)

// defaultBackgroundImage is the static fallback when neither an upcoming
// event nor the site settings provide a background.
const defaultBackgroundImage = "/static/images/default-background.jpg"

const siteContextCacheKey = "site_context"

// SiteService assembles the sitewide context and the composite home
// page. The context is served through a short-TTL cache: edits may take
// up to the TTL to become visible, which the site accepts by design of
// its publishing flow.
type SiteService struct {
	repos *repositories.Repositories
	cache *sitecache.Cache
}

// NewSiteService creates a new site service instance
func NewSiteService(repos *repositories.Repositories, cache *sitecache.Cache) *SiteService {
	return &SiteService{
		repos: repos,
		cache: cache,
	}
}

// GetSiteContext returns the cached sitewide context, loading it on a
// miss
func (s *SiteService) GetSiteContext(ctx context.Context, now time.Time) (*dto.SiteContext, error) {
	v, err := s.cache.GetOrLoad(siteContextCacheKey, func() (interface{}, error) {
		return s.loadSiteContext(ctx, now)
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.SiteContext), nil
}

// loadSiteContext builds the context from scratch. Missing singletons
// are tolerated: a site that has not been configured yet still renders.
func (s *SiteService) loadSiteContext(ctx context.Context, now time.Time) (*dto.SiteContext, error) {
	sc := &dto.SiteContext{}

	settings, err := s.repos.SiteSettingsRepository.Get(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}
	sc.Settings = settings

	about, err := s.repos.AboutRepository.Get(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}
	sc.AboutPage = about

	if sc.LatestNews, err = s.repos.NewsRepository.GetPublished(ctx, contextNewsLimit); err != nil {
		return nil, err
	}
	upcoming, err := s.repos.EventRepository.GetUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(upcoming) > contextEventsLimit {
		upcoming = upcoming[:contextEventsLimit]
	}
	sc.UpcomingEvents = upcoming

	if sc.ResearchAreas, err = s.repos.ResearchRepository.GetAll(ctx); err != nil {
		return nil, err
	}
	if sc.ResourceCategories, err = s.repos.ResourceRepository.GetAllCategories(ctx); err != nil {
		return nil, err
	}
	if sc.Communities, err = s.repos.CommunityRepository.GetActive(ctx); err != nil {
		return nil, err
	}
	if sc.FeaturedProjects, err = s.repos.ProjectRepository.GetFeatured(ctx, featuredProjectLimit); err != nil {
		return nil, err
	}
	slides, err := s.repos.ShowcaseRepository.GetHeroSlides(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(slides) > contextHeroSlideLimit {
		slides = slides[:contextHeroSlideLimit]
	}
	sc.HeroSlides = slides

	return sc, nil
}

// GetHomePage assembles the composite home page view-model
func (s *SiteService) GetHomePage(ctx context.Context, now time.Time) (*dto.HomePage, error) {
	home := &dto.HomePage{}

	settings, err := s.repos.SiteSettingsRepository.Get(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}
	home.Settings = settings

	if home.HeroSlides, err = s.repos.ShowcaseRepository.GetHeroSlides(ctx, true); err != nil {
		return nil, err
	}
	if home.Pillars, err = s.repos.ShowcaseRepository.GetPillars(ctx); err != nil {
		return nil, err
	}

	upcoming, _, err := s.repos.EventRepository.GetUpcomingPage(ctx, now, homeUpcomingEventLimit, 0)
	if err != nil {
		return nil, err
	}
	home.UpcomingEvents = upcoming

	past, _, err := s.repos.EventRepository.GetPastPage(ctx, now, homePastEventLimit, 0)
	if err != nil {
		return nil, err
	}
	home.PastEvents = past

	home.BackgroundImageURL = backgroundImageURL(upcoming, settings)

	if home.LatestNews, err = s.repos.NewsRepository.GetPublished(ctx, homeNewsLimit); err != nil {
		return nil, err
	}
	if home.FeaturedProjects, err = s.repos.ProjectRepository.GetFeatured(ctx, featuredProjectLimit); err != nil {
		return nil, err
	}
	if home.FeaturedCommunities, err = s.repos.CommunityRepository.GetFeatured(ctx); err != nil {
		return nil, err
	}
	if home.Partners, err = s.repos.PartnerRepository.GetActive(ctx); err != nil {
		return nil, err
	}

	leaders, err := s.repos.LeaderRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	home.LeaderGroups = groupCurrentLeaders(leaders, now)

	if home.GalleryImages, err = s.repos.GalleryRepository.GetRecentImages(ctx, homeGalleryImageLimit); err != nil {
		return nil, err
	}

	return home, nil
}

// backgroundImageURL picks the home page backdrop: the first upcoming
// event's image, then the configured site background, then the static
// default.
func backgroundImageURL(upcoming []*models.Event, settings *models.SiteSettings) string {
	for _, event := range upcoming {
		if event.Image != "" {
			return event.Image
		}
	}
	if settings != nil && settings.BackgroundImage != "" {
		return settings.BackgroundImage
	}
	return defaultBackgroundImage
}

// groupCurrentLeaders buckets current leaders by category in the order
// the home page renders them
func groupCurrentLeaders(leaders []*models.Leader, now time.Time) []dto.LeaderGroup {
	groups := []dto.LeaderGroup{
		{Category: models.CategoryStudent, Label: "Student Leaders", Leaders: []*models.Leader{}},
		{Category: models.CategoryExecutive, Label: "Executive Board", Leaders: []*models.Leader{}},
		{Category: models.CategoryFaculty, Label: "Faculty Mentors", Leaders: []*models.Leader{}},
	}

	for _, leader := range leaders {
		if !leader.IsCurrent(now) {
			continue
		}
		for i := range groups {
			if groups[i].Category == leader.Category {
				groups[i].Leaders = append(groups[i].Leaders, leader)
			}
		}
	}

	return groups
}

// FlushContextCache drops the cached sitewide context. The seed path
// uses it after inserting defaults.
func (s *SiteService) FlushContextCache() {
	s.cache.Flush()
}
