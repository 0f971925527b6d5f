package services

import (
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/auth"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/filestorage"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/sitecache"
)

// Services holds all the service instances
type Services struct {
	SettingsService *SettingsService
	LeaderService   *LeaderService
	EventService    *EventService
	NewsService     *NewsService
	ProjectService  *ProjectService
	CatalogService  *CatalogService
	PartnerService  *PartnerService
	ShowcaseService *ShowcaseService
	GalleryService  *GalleryService
	SessionService  *SessionService
	SearchService   *SearchService
	JoinService     *JoinService
	AuthService     *AuthService
	SiteService     *SiteService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage *filestorage.LocalStorage, cache *sitecache.Cache) *Services {
	return &Services{
		SettingsService: NewSettingsService(repos.SiteSettingsRepository, repos.AboutRepository),
		LeaderService:   NewLeaderService(repos.LeaderRepository),
		EventService:    NewEventService(repos.EventRepository),
		NewsService:     NewNewsService(repos.NewsRepository),
		ProjectService:  NewProjectService(repos.ProjectRepository),
		CatalogService:  NewCatalogService(repos.ResearchRepository, repos.ResourceRepository),
		PartnerService:  NewPartnerService(repos.PartnerRepository, repos.CommunityRepository),
		ShowcaseService: NewShowcaseService(repos.ShowcaseRepository),
		GalleryService:  NewGalleryService(repos.GalleryRepository, storage),
		SessionService:  NewSessionService(repos.SessionRepository, repos.LeaderRepository),
		SearchService:   NewSearchService(repos.LeaderRepository, repos.GalleryRepository, repos.SessionRepository),
		JoinService:     NewJoinService(repos.JoinRequestRepository),
		AuthService:     NewAuthService(repos.AdminUserRepository, jwtService),
		SiteService:     NewSiteService(repos, cache),
	}
}
