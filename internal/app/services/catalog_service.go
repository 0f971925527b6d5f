package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/slugify"
)

// CatalogService handles the research areas and resource library, the
// slug-addressed navigation content
type CatalogService struct {
	researchRepo *repositories.ResearchRepository
	resourceRepo *repositories.ResourceRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(researchRepo *repositories.ResearchRepository, resourceRepo *repositories.ResourceRepository) *CatalogService {
	return &CatalogService{
		researchRepo: researchRepo,
		resourceRepo: resourceRepo,
	}
}

// CreateResearchArea creates a research area, deriving a unique slug
// from the name
func (s *CatalogService) CreateResearchArea(ctx context.Context, area *models.ResearchArea) error {
	if strings.TrimSpace(area.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if area.Slug == "" {
		slug, err := slugify.MakeUnique(ctx, area.Name, s.researchRepo.SlugExists)
		if err != nil {
			return err
		}
		area.Slug = slug
	}

	return s.researchRepo.Create(ctx, area)
}

// GetResearchAreaByID retrieves a research area by ID
func (s *CatalogService) GetResearchAreaByID(ctx context.Context, id int64) (*models.ResearchArea, error) {
	return s.researchRepo.GetByID(ctx, id)
}

// GetResearchAreas retrieves all research areas in display order
func (s *CatalogService) GetResearchAreas(ctx context.Context) ([]*models.ResearchArea, error) {
	return s.researchRepo.GetAll(ctx)
}

// UpdateResearchArea updates an existing research area
func (s *CatalogService) UpdateResearchArea(ctx context.Context, area *models.ResearchArea) error {
	if strings.TrimSpace(area.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.researchRepo.Update(ctx, area)
}

// DeleteResearchArea deletes a research area by ID
func (s *CatalogService) DeleteResearchArea(ctx context.Context, id int64) error {
	return s.researchRepo.Delete(ctx, id)
}

// CreateResourceCategory creates a resource category, deriving a unique
// slug from the name
func (s *CatalogService) CreateResourceCategory(ctx context.Context, category *models.ResourceCategory) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if category.Slug == "" {
		slug, err := slugify.MakeUnique(ctx, category.Name, s.resourceRepo.CategorySlugExists)
		if err != nil {
			return err
		}
		category.Slug = slug
	}

	return s.resourceRepo.CreateCategory(ctx, category)
}

// GetResourceCategoryByID retrieves a resource category with its links
func (s *CatalogService) GetResourceCategoryByID(ctx context.Context, id int64) (*models.ResourceCategory, error) {
	return s.resourceRepo.GetCategoryByID(ctx, id)
}

// GetResourceCategoryBySlug retrieves a resource category with its
// links by slug
func (s *CatalogService) GetResourceCategoryBySlug(ctx context.Context, slug string) (*models.ResourceCategory, error) {
	return s.resourceRepo.GetCategoryBySlug(ctx, slug)
}

// GetResourceCategories retrieves all categories with their active links
func (s *CatalogService) GetResourceCategories(ctx context.Context) ([]*models.ResourceCategory, error) {
	return s.resourceRepo.GetAllCategories(ctx)
}

// UpdateResourceCategory updates an existing resource category
func (s *CatalogService) UpdateResourceCategory(ctx context.Context, category *models.ResourceCategory) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.resourceRepo.UpdateCategory(ctx, category)
}

// DeleteResourceCategory deletes a resource category and its links
func (s *CatalogService) DeleteResourceCategory(ctx context.Context, id int64) error {
	return s.resourceRepo.DeleteCategory(ctx, id)
}

// validateLink checks the link fields and enforces title uniqueness
// within the category
func (s *CatalogService) validateLink(ctx context.Context, link *models.ResourceLink) error {
	if strings.TrimSpace(link.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(link.URL) == "" {
		return fmt.Errorf("%w: url cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.resourceRepo.GetCategoryByID(ctx, link.CategoryID); err != nil {
		return err
	}

	taken, err := s.resourceRepo.LinkTitleExists(ctx, link.CategoryID, link.Title, link.ID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrLinkTitleTaken
	}

	return nil
}

// CreateResourceLink creates a resource link inside a category
func (s *CatalogService) CreateResourceLink(ctx context.Context, link *models.ResourceLink) error {
	if err := s.validateLink(ctx, link); err != nil {
		return err
	}
	return s.resourceRepo.CreateLink(ctx, link)
}

// UpdateResourceLink updates an existing resource link
func (s *CatalogService) UpdateResourceLink(ctx context.Context, link *models.ResourceLink) error {
	if err := s.validateLink(ctx, link); err != nil {
		return err
	}
	return s.resourceRepo.UpdateLink(ctx, link)
}

// DeleteResourceLink deletes a resource link by ID
func (s *CatalogService) DeleteResourceLink(ctx context.Context, id int64) error {
	return s.resourceRepo.DeleteLink(ctx, id)
}
