package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

// ShowcaseService handles the home page hero slides and pillars
type ShowcaseService struct {
	showcaseRepo *repositories.ShowcaseRepository
}

// NewShowcaseService creates a new showcase service instance
func NewShowcaseService(showcaseRepo *repositories.ShowcaseRepository) *ShowcaseService {
	return &ShowcaseService{
		showcaseRepo: showcaseRepo,
	}
}

// CreateHeroSlide creates a new hero slide
func (s *ShowcaseService) CreateHeroSlide(ctx context.Context, slide *models.HeroSlide) error {
	if strings.TrimSpace(slide.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(slide.Image) == "" {
		return fmt.Errorf("%w: image is required", apperrors.ErrValidationFailed)
	}
	return s.showcaseRepo.CreateHeroSlide(ctx, slide)
}

// GetHeroSlideByID retrieves a hero slide by ID
func (s *ShowcaseService) GetHeroSlideByID(ctx context.Context, id int64) (*models.HeroSlide, error) {
	return s.showcaseRepo.GetHeroSlideByID(ctx, id)
}

// GetActiveHeroSlides retrieves the active hero slides in display order
func (s *ShowcaseService) GetActiveHeroSlides(ctx context.Context) ([]*models.HeroSlide, error) {
	return s.showcaseRepo.GetHeroSlides(ctx, true)
}

// GetAllHeroSlides retrieves every hero slide for the admin surface
func (s *ShowcaseService) GetAllHeroSlides(ctx context.Context) ([]*models.HeroSlide, error) {
	return s.showcaseRepo.GetHeroSlides(ctx, false)
}

// UpdateHeroSlide updates an existing hero slide
func (s *ShowcaseService) UpdateHeroSlide(ctx context.Context, slide *models.HeroSlide) error {
	if strings.TrimSpace(slide.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.showcaseRepo.UpdateHeroSlide(ctx, slide)
}

// DeleteHeroSlide deletes a hero slide by ID
func (s *ShowcaseService) DeleteHeroSlide(ctx context.Context, id int64) error {
	return s.showcaseRepo.DeleteHeroSlide(ctx, id)
}

// CreatePillar creates a new pillar
func (s *ShowcaseService) CreatePillar(ctx context.Context, pillar *models.Pillar) error {
	if strings.TrimSpace(pillar.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.showcaseRepo.CreatePillar(ctx, pillar)
}

// GetPillarByID retrieves a pillar by ID
func (s *ShowcaseService) GetPillarByID(ctx context.Context, id int64) (*models.Pillar, error) {
	return s.showcaseRepo.GetPillarByID(ctx, id)
}

// GetPillars retrieves all pillars in display order
func (s *ShowcaseService) GetPillars(ctx context.Context) ([]*models.Pillar, error) {
	return s.showcaseRepo.GetPillars(ctx)
}

// UpdatePillar updates an existing pillar
func (s *ShowcaseService) UpdatePillar(ctx context.Context, pillar *models.Pillar) error {
	if strings.TrimSpace(pillar.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.showcaseRepo.UpdatePillar(ctx, pillar)
}

// DeletePillar deletes a pillar by ID
func (s *ShowcaseService) DeletePillar(ctx context.Context, id int64) error {
	return s.showcaseRepo.DeletePillar(ctx, id)
}
