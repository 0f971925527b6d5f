package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/controllers"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/middleware"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Site     *controllers.SiteController
	Settings *controllers.SettingsController
	Leader   *controllers.LeaderController
	Event    *controllers.EventController
	News     *controllers.NewsController
	Project  *controllers.ProjectController
	Catalog  *controllers.CatalogController
	Partner  *controllers.PartnerController
	Showcase *controllers.ShowcaseController
	Gallery  *controllers.GalleryController
	Session  *controllers.SessionController
	Join     *controllers.JoinController
	Auth     *controllers.AuthController
	Upload   *controllers.UploadController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// --- Public content routes ---
	v1.GET("/site-context", c.Site.GetSiteContext)
	v1.GET("/home", c.Site.GetHomePage)
	v1.GET("/about", c.Settings.GetAbout)
	v1.GET("/search", c.Site.Search)
	v1.GET("/health", c.Site.Health)

	leaders := v1.Group("/leaders")
	{
		leaders.GET("", c.Leader.GetCurrentLeaders)
		leaders.GET("/all", c.Leader.GetAllLeaders)
		leaders.GET("/:id", c.Leader.GetLeaderByID)
	}

	events := v1.Group("/events")
	{
		events.GET("", c.Event.GetEventsPage)
		events.GET("/feed", c.Event.Feed)
		events.GET("/:id", c.Event.GetEventByID)
	}

	news := v1.Group("/news")
	{
		news.GET("", c.News.GetPublishedNews)
		news.GET("/:id", c.News.GetNewsByID)
		news.GET("/slug/:slug", c.News.GetNewsBySlug)
	}

	projects := v1.Group("/projects")
	{
		projects.GET("", c.Project.GetPublishedProjects)
		projects.GET("/feed", c.Project.Feed)
		projects.GET("/:slug", c.Project.GetProjectBySlug)
	}

	v1.GET("/research", c.Catalog.GetResearchAreas)
	v1.GET("/research/:id", c.Catalog.GetResearchAreaByID)
	v1.GET("/resources", c.Catalog.GetResourceCategories)
	v1.GET("/resources/:slug", c.Catalog.GetResourceCategoryBySlug)
	v1.GET("/partners", c.Partner.GetActivePartners)
	v1.GET("/communities", c.Partner.GetActiveCommunities)
	v1.GET("/communities/:slug", c.Partner.GetCommunityBySlug)

	albums := v1.Group("/albums")
	{
		albums.GET("", c.Gallery.GetPublishedAlbums)
		albums.GET("/:id", c.Gallery.GetAlbumByID)
	}

	sessions := v1.Group("/sessions")
	{
		sessions.GET("", c.Session.GetPublishedSessions)
		sessions.GET("/:id", c.Session.GetSessionByID)
	}

	v1.POST("/join-requests", c.Join.Submit)

	// Legacy feed paths kept for the widgets embedded on other sites.
	// They answer with a trailing slash and report bad pages inside a
	// 200 body rather than an HTTP error.
	legacy := router.Group("/api")
	{
		legacy.GET("/events/", c.Event.Feed)
		legacy.GET("/projects/", c.Project.Feed)
	}

	// --- Admin routes ---
	v1.POST("/admin/login", c.Auth.Login)

	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
	{
		admin.GET("/me", c.Auth.Me)
		admin.POST("/change-password", c.Auth.ChangePassword)

		admin.GET("/site-settings", c.Settings.GetSettings)
		admin.POST("/site-settings", c.Settings.CreateSettings)
		admin.PUT("/site-settings", c.Settings.SaveSettings)
		admin.GET("/about", c.Settings.GetAboutAdmin)
		admin.PUT("/about", c.Settings.SaveAbout)

		admin.POST("/leaders", c.Leader.CreateLeader)
		admin.PUT("/leaders/:id", c.Leader.UpdateLeader)
		admin.DELETE("/leaders/:id", c.Leader.DeleteLeader)

		admin.GET("/events", c.Event.GetAllEvents)
		admin.POST("/events", c.Event.CreateEvent)
		admin.PUT("/events/:id", c.Event.UpdateEvent)
		admin.DELETE("/events/:id", c.Event.DeleteEvent)

		admin.GET("/news", c.News.GetAllNews)
		admin.POST("/news", c.News.CreateNews)
		admin.PUT("/news/:id", c.News.UpdateNews)
		admin.DELETE("/news/:id", c.News.DeleteNews)

		admin.GET("/projects", c.Project.GetAllProjects)
		admin.GET("/projects/:id", c.Project.GetProjectByID)
		admin.POST("/projects", c.Project.CreateProject)
		admin.PUT("/projects/:id", c.Project.UpdateProject)
		admin.DELETE("/projects/:id", c.Project.DeleteProject)

		admin.POST("/research", c.Catalog.CreateResearchArea)
		admin.PUT("/research/:id", c.Catalog.UpdateResearchArea)
		admin.DELETE("/research/:id", c.Catalog.DeleteResearchArea)

		admin.POST("/resources/categories", c.Catalog.CreateResourceCategory)
		admin.PUT("/resources/categories/:id", c.Catalog.UpdateResourceCategory)
		admin.DELETE("/resources/categories/:id", c.Catalog.DeleteResourceCategory)
		admin.POST("/resources/links", c.Catalog.CreateResourceLink)
		admin.PUT("/resources/links/:id", c.Catalog.UpdateResourceLink)
		admin.DELETE("/resources/links/:id", c.Catalog.DeleteResourceLink)

		admin.GET("/partners", c.Partner.GetAllPartners)
		admin.POST("/partners", c.Partner.CreatePartner)
		admin.PUT("/partners/:id", c.Partner.UpdatePartner)
		admin.DELETE("/partners/:id", c.Partner.DeletePartner)

		admin.GET("/communities", c.Partner.GetAllCommunities)
		admin.POST("/communities", c.Partner.CreateCommunity)
		admin.PUT("/communities/:id", c.Partner.UpdateCommunity)
		admin.DELETE("/communities/:id", c.Partner.DeleteCommunity)

		admin.GET("/hero-slides", c.Showcase.GetAllHeroSlides)
		admin.POST("/hero-slides", c.Showcase.CreateHeroSlide)
		admin.PUT("/hero-slides/:id", c.Showcase.UpdateHeroSlide)
		admin.DELETE("/hero-slides/:id", c.Showcase.DeleteHeroSlide)

		admin.GET("/pillars", c.Showcase.GetPillars)
		admin.POST("/pillars", c.Showcase.CreatePillar)
		admin.PUT("/pillars/:id", c.Showcase.UpdatePillar)
		admin.DELETE("/pillars/:id", c.Showcase.DeletePillar)

		admin.GET("/albums", c.Gallery.GetAllAlbums)
		admin.POST("/albums", c.Gallery.CreateAlbum)
		admin.PUT("/albums/:id", c.Gallery.UpdateAlbum)
		admin.DELETE("/albums/:id", c.Gallery.DeleteAlbum)
		admin.POST("/albums/:id/images", c.Gallery.AddImage)
		admin.DELETE("/albums/images/:imageId", c.Gallery.DeleteImage)

		admin.GET("/sessions", c.Session.GetAllSessions)
		admin.POST("/sessions", c.Session.CreateSession)
		admin.PUT("/sessions/:id", c.Session.UpdateSession)
		admin.DELETE("/sessions/:id", c.Session.DeleteSession)
		admin.POST("/sessions/:id/images", c.Session.AddImage)
		admin.DELETE("/sessions/images/:imageId", c.Session.DeleteImage)

		admin.GET("/join-requests", c.Join.List)
		admin.DELETE("/join-requests/:id", c.Join.Delete)

		admin.POST("/uploads/:category", c.Upload.Upload)
		admin.DELETE("/cache/site-context", c.Site.FlushCache)
	}
}
