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

// PartnerService handles partners and community outreach programmes
type PartnerService struct {
	partnerRepo   *repositories.PartnerRepository
	communityRepo *repositories.CommunityRepository
}

// NewPartnerService creates a new partner service instance
func NewPartnerService(partnerRepo *repositories.PartnerRepository, communityRepo *repositories.CommunityRepository) *PartnerService {
	return &PartnerService{
		partnerRepo:   partnerRepo,
		communityRepo: communityRepo,
	}
}

func validPartnerType(t models.PartnerType) bool {
	switch t {
	case models.PartnerSponsor, models.PartnerCollaborator, models.PartnerAcademic, models.PartnerOther:
		return true
	}
	return false
}

// CreatePartner creates a new partner
func (s *PartnerService) CreatePartner(ctx context.Context, partner *models.Partner) error {
	if strings.TrimSpace(partner.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validPartnerType(partner.PartnerType) {
		return fmt.Errorf("%w: unknown partner type %q", apperrors.ErrValidationFailed, partner.PartnerType)
	}
	return s.partnerRepo.Create(ctx, partner)
}

// GetPartnerByID retrieves a partner by ID
func (s *PartnerService) GetPartnerByID(ctx context.Context, id int64) (*models.Partner, error) {
	return s.partnerRepo.GetByID(ctx, id)
}

// GetActivePartners retrieves active partners grouped by type
func (s *PartnerService) GetActivePartners(ctx context.Context) ([]*models.Partner, error) {
	return s.partnerRepo.GetActive(ctx)
}

// GetAllPartners retrieves every partner for the admin surface
func (s *PartnerService) GetAllPartners(ctx context.Context) ([]*models.Partner, error) {
	return s.partnerRepo.GetAll(ctx)
}

// UpdatePartner updates an existing partner
func (s *PartnerService) UpdatePartner(ctx context.Context, partner *models.Partner) error {
	if strings.TrimSpace(partner.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validPartnerType(partner.PartnerType) {
		return fmt.Errorf("%w: unknown partner type %q", apperrors.ErrValidationFailed, partner.PartnerType)
	}
	return s.partnerRepo.Update(ctx, partner)
}

// DeletePartner deletes a partner by ID
func (s *PartnerService) DeletePartner(ctx context.Context, id int64) error {
	return s.partnerRepo.Delete(ctx, id)
}

// CreateCommunity creates a community outreach entry, deriving a unique
// slug from the title
func (s *PartnerService) CreateCommunity(ctx context.Context, community *models.CommunityOutreach) error {
	if strings.TrimSpace(community.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if community.Slug == "" {
		slug, err := slugify.MakeUnique(ctx, community.Title, s.communityRepo.SlugExists)
		if err != nil {
			return err
		}
		community.Slug = slug
	}

	return s.communityRepo.Create(ctx, community)
}

// GetCommunityByID retrieves a community by ID
func (s *PartnerService) GetCommunityByID(ctx context.Context, id int64) (*models.CommunityOutreach, error) {
	return s.communityRepo.GetByID(ctx, id)
}

// GetCommunityBySlug retrieves a community by slug
func (s *PartnerService) GetCommunityBySlug(ctx context.Context, slug string) (*models.CommunityOutreach, error) {
	return s.communityRepo.GetBySlug(ctx, slug)
}

// GetActiveCommunities retrieves active communities in display order
func (s *PartnerService) GetActiveCommunities(ctx context.Context) ([]*models.CommunityOutreach, error) {
	return s.communityRepo.GetActive(ctx)
}

// GetFeaturedCommunities retrieves active featured communities
func (s *PartnerService) GetFeaturedCommunities(ctx context.Context) ([]*models.CommunityOutreach, error) {
	return s.communityRepo.GetFeatured(ctx)
}

// GetAllCommunities retrieves every community for the admin surface
func (s *PartnerService) GetAllCommunities(ctx context.Context) ([]*models.CommunityOutreach, error) {
	return s.communityRepo.GetAll(ctx)
}

// UpdateCommunity updates an existing community
func (s *PartnerService) UpdateCommunity(ctx context.Context, community *models.CommunityOutreach) error {
	if strings.TrimSpace(community.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.communityRepo.Update(ctx, community)
}

// DeleteCommunity deletes a community by ID
func (s *PartnerService) DeleteCommunity(ctx context.Context, id int64) error {
	return s.communityRepo.Delete(ctx, id)
}
