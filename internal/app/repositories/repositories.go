package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	SiteSettingsRepository *SiteSettingsRepository
	AboutRepository        *AboutRepository
	LeaderRepository       *LeaderRepository
	EventRepository        *EventRepository
	NewsRepository         *NewsRepository
	ProjectRepository      *ProjectRepository
	ResearchRepository     *ResearchRepository
	ResourceRepository     *ResourceRepository
	PartnerRepository      *PartnerRepository
	CommunityRepository    *CommunityRepository
	ShowcaseRepository     *ShowcaseRepository
	GalleryRepository      *GalleryRepository
	SessionRepository      *SessionRepository
	JoinRequestRepository  *JoinRequestRepository
	AdminUserRepository    *AdminUserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SiteSettingsRepository: NewSiteSettingsRepository(db),
		AboutRepository:        NewAboutRepository(db),
		LeaderRepository:       NewLeaderRepository(db),
		EventRepository:        NewEventRepository(db),
		NewsRepository:         NewNewsRepository(db),
		ProjectRepository:      NewProjectRepository(db),
		ResearchRepository:     NewResearchRepository(db),
		ResourceRepository:     NewResourceRepository(db),
		PartnerRepository:      NewPartnerRepository(db),
		CommunityRepository:    NewCommunityRepository(db),
		ShowcaseRepository:     NewShowcaseRepository(db),
		GalleryRepository:      NewGalleryRepository(db),
		SessionRepository:      NewSessionRepository(db),
		JoinRequestRepository:  NewJoinRequestRepository(db),
		AdminUserRepository:    NewAdminUserRepository(db),
	}
}
