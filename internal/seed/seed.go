package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	appRepos "github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/auth"
)

// CreateDefaultData seeds the site settings singleton and the first admin
// account so a fresh install is usable. Both are skipped when they exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	settingsRepo := appRepos.NewSiteSettingsRepository(dbPool)
	adminRepo := appRepos.NewAdminUserRepository(dbPool)

	var finalErr error

	// --- Site settings singleton --- //
	settings := &appModels.SiteSettings{
		SiteName:     "Kabale University AI & IndabaX Club",
		Tagline:      "Building an AI community in south-western Uganda",
		ContactEmail: "aiclub@kab.ac.ug",
	}
	if err := settingsRepo.Create(ctx, settings); err != nil {
		if errors.Is(err, apperrors.ErrSingletonExists) {
			lgr.Debug().Msg("Site settings already exist, skipping seed")
		} else {
			lgr.Error().Err(err).Msg("Error seeding site settings")
			finalErr = errors.Join(finalErr, err)
		}
	} else {
		lgr.Info().Msg("Seeded default site settings")
	}

	// --- First admin account --- //
	// Credentials come from the environment so no default password ships
	// in the binary. Nothing is created when they are unset.
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		lgr.Debug().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return finalErr
	}

	exists, err := adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing admin account")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Admin account already exists, skipping seed")
		return finalErr
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing seed admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.AdminUser{
		Email:    email,
		Password: hash,
		FullName: "Site Administrator",
		IsActive: true,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error seeding admin account")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Str("email", email).Msg("Seeded admin account")
	return finalErr
}
