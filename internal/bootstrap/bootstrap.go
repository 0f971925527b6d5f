package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/controllers"
	appMigrations "github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/migrations"
	appRepos "github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	appRoutes "github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/routes"
	appServices "github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/services"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/config"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/db"
	appMiddleware "github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/middleware"
	pkgAuth "github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/auth"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/filestorage"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/helpers"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/logger"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/sitecache"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	SiteCache      *sitecache.Cache
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The base URL must match the static file serving route.
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.SiteCache = sitecache.New(cfg.SiteContextTTL())

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, deps.SiteCache)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = &appRoutes.Controllers{
		Site:     appControllers.NewSiteController(deps.Services.SiteService, deps.Services.SearchService),
		Settings: appControllers.NewSettingsController(deps.Services.SettingsService),
		Leader:   appControllers.NewLeaderController(deps.Services.LeaderService),
		Event:    appControllers.NewEventController(deps.Services.EventService),
		News:     appControllers.NewNewsController(deps.Services.NewsService),
		Project:  appControllers.NewProjectController(deps.Services.ProjectService),
		Catalog:  appControllers.NewCatalogController(deps.Services.CatalogService),
		Partner:  appControllers.NewPartnerController(deps.Services.PartnerService),
		Showcase: appControllers.NewShowcaseController(deps.Services.ShowcaseService),
		Gallery:  appControllers.NewGalleryController(deps.Services.GalleryService),
		Session:  appControllers.NewSessionController(deps.Services.SessionService),
		Join:     appControllers.NewJoinController(deps.Services.JoinService),
		Auth:     appControllers.NewAuthController(deps.Services.AuthService),
		Upload:   appControllers.NewUploadController(deps.FileStorage),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
