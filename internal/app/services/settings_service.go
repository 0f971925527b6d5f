package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

// SettingsService handles the singleton site settings and about page
type SettingsService struct {
	settingsRepo *repositories.SiteSettingsRepository
	aboutRepo    *repositories.AboutRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo *repositories.SiteSettingsRepository, aboutRepo *repositories.AboutRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		aboutRepo:    aboutRepo,
	}
}

// GetSettings retrieves the site settings
func (s *SettingsService) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// CreateSettings inserts the site settings row. A second create is
// rejected; admins should update the existing row instead.
func (s *SettingsService) CreateSettings(ctx context.Context, settings *models.SiteSettings) error {
	if strings.TrimSpace(settings.SiteName) == "" {
		return fmt.Errorf("%w: site name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.settingsRepo.Create(ctx, settings)
}

// SaveSettings writes the site settings, creating the row the first
// time and updating it afterwards
func (s *SettingsService) SaveSettings(ctx context.Context, settings *models.SiteSettings) error {
	if strings.TrimSpace(settings.SiteName) == "" {
		return fmt.Errorf("%w: site name cannot be empty", apperrors.ErrValidationFailed)
	}

	existing, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return s.settingsRepo.Create(ctx, settings)
		}
		return err
	}

	settings.ID = existing.ID
	return s.settingsRepo.Update(ctx, settings)
}

// GetAbout retrieves the about page with its child sections
func (s *SettingsService) GetAbout(ctx context.Context) (*models.AboutPage, error) {
	return s.aboutRepo.Get(ctx)
}

// SaveAbout writes the about page, creating it the first time and
// updating it afterwards
func (s *SettingsService) SaveAbout(ctx context.Context, page *models.AboutPage) error {
	if strings.TrimSpace(page.MainHeading) == "" {
		return fmt.Errorf("%w: main heading cannot be empty", apperrors.ErrValidationFailed)
	}
	for _, o := range page.Objectives {
		if strings.TrimSpace(o.Text) == "" {
			return fmt.Errorf("%w: objective text cannot be empty", apperrors.ErrValidationFailed)
		}
	}
	for _, l := range page.AffiliationLinks {
		if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.URL) == "" {
			return fmt.Errorf("%w: affiliation link needs a name and URL", apperrors.ErrValidationFailed)
		}
	}

	existing, err := s.aboutRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return s.aboutRepo.Create(ctx, page)
		}
		return err
	}

	page.ID = existing.ID
	return s.aboutRepo.Update(ctx, page)
}
