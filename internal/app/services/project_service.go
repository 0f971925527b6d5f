package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/helpers"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/slugify"
)

// The projects feed always pages three at a time; clients cannot
// change it.
const ProjectFeedPerPage = 3

// Feed dates keep the original ISO-8601 wire format.
const projectFeedDateLayout = "2006-01-02"

// ProjectService handles project-related operations
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

func validProjectStatus(status models.ProjectStatus) bool {
	switch status {
	case models.ProjectOngoing, models.ProjectCompleted, models.ProjectPlanned:
		return true
	}
	return false
}

func (s *ProjectService) validateProject(project *models.Project) error {
	if strings.TrimSpace(project.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validProjectStatus(project.Status) {
		return fmt.Errorf("%w: unknown project status %q", apperrors.ErrValidationFailed, project.Status)
	}
	return nil
}

// CreateProject creates a project, deriving a unique slug from the title
func (s *ProjectService) CreateProject(ctx context.Context, project *models.Project) error {
	if err := s.validateProject(project); err != nil {
		return err
	}

	if project.Slug == "" {
		slug, err := slugify.MakeUnique(ctx, project.Title, s.projectRepo.SlugExists)
		if err != nil {
			return err
		}
		project.Slug = slug
	}
	if project.PublishDate.IsZero() {
		project.PublishDate = time.Now()
	}

	return s.projectRepo.Create(ctx, project)
}

// GetProjectByID retrieves a project by ID
func (s *ProjectService) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// GetProjectBySlug retrieves a published project by slug
func (s *ProjectService) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return s.projectRepo.GetBySlug(ctx, slug)
}

// GetPublishedProjects retrieves published projects, newest first
func (s *ProjectService) GetPublishedProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.GetPublished(ctx)
}

// GetAllProjects retrieves every project for the admin surface
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

// UpdateProject updates an existing project, keeping the slug stable
// unless it was cleared
func (s *ProjectService) UpdateProject(ctx context.Context, project *models.Project) error {
	if err := s.validateProject(project); err != nil {
		return err
	}

	if project.Slug == "" {
		slug, err := slugify.MakeUnique(ctx, project.Title, s.projectRepo.SlugExists)
		if err != nil {
			return err
		}
		project.Slug = slug
	}

	return s.projectRepo.Update(ctx, project)
}

// DeleteProject deletes a project by ID
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	return s.projectRepo.Delete(ctx, id)
}

// Feed serves the legacy paginated projects feed at a fixed three per
// page. A page past the end yields an envelope with the Error field
// set; the caller still responds 200.
func (s *ProjectService) Feed(ctx context.Context, page int) (*dto.ProjectFeedResponse, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ProjectFeedPerPage

	projects, totalCount, err := s.projectRepo.GetPage(ctx, ProjectFeedPerPage, offset)
	if err != nil {
		return nil, err
	}

	return buildProjectFeed(page, projects, totalCount), nil
}

// buildProjectFeed assembles the feed envelope. An empty page beyond
// the first reproduces the legacy pagination error: the Error field is
// set and the totals are zeroed, matching the original error body.
func buildProjectFeed(page int, projects []*models.Project, totalCount int64) *dto.ProjectFeedResponse {
	resp := &dto.ProjectFeedResponse{
		Projects: []dto.ProjectFeedItem{},
		Page:     page,
		PerPage:  ProjectFeedPerPage,
	}

	if len(projects) == 0 && page > 1 {
		resp.Error = "Invalid page."
		return resp
	}

	resp.TotalPages = helpers.TotalPages(totalCount, ProjectFeedPerPage)
	resp.TotalCount = totalCount

	for _, project := range projects {
		resp.Projects = append(resp.Projects, dto.ProjectFeedItem{
			ID:          project.ID,
			Title:       project.Title,
			Summary:     project.Summary,
			ImageURL:    project.Image,
			PublishDate: project.PublishDate.Format(projectFeedDateLayout),
			URL:         project.URL,
		})
	}

	resp.HasPrevious = page > 1
	resp.HasNext = page < resp.TotalPages

	return resp
}
