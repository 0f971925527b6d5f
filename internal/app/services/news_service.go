package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/slugify"
)

// NewsService handles news-related operations
type NewsService struct {
	newsRepo *repositories.NewsRepository
}

// NewNewsService creates a new news service instance
func NewNewsService(newsRepo *repositories.NewsRepository) *NewsService {
	return &NewsService{
		newsRepo: newsRepo,
	}
}

func (s *NewsService) validateNews(news *models.News) error {
	if strings.TrimSpace(news.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(news.Content) == "" {
		return fmt.Errorf("%w: content cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateNews creates a news post, deriving a unique slug from the title
func (s *NewsService) CreateNews(ctx context.Context, news *models.News) error {
	if err := s.validateNews(news); err != nil {
		return err
	}

	if news.Slug == "" {
		slug, err := slugify.MakeUnique(ctx, news.Title, s.newsRepo.SlugExists)
		if err != nil {
			return err
		}
		news.Slug = slug
	}
	if news.PublishDate.IsZero() {
		news.PublishDate = time.Now()
	}

	return s.newsRepo.Create(ctx, news)
}

// GetNewsByID retrieves a news post by ID
func (s *NewsService) GetNewsByID(ctx context.Context, id int64) (*models.News, error) {
	return s.newsRepo.GetByID(ctx, id)
}

// GetNewsBySlug retrieves a published news post by slug
func (s *NewsService) GetNewsBySlug(ctx context.Context, slug string) (*models.News, error) {
	return s.newsRepo.GetBySlug(ctx, slug)
}

// GetPublishedNews retrieves published news posts, newest first. A
// limit of 0 returns all of them.
func (s *NewsService) GetPublishedNews(ctx context.Context, limit int) ([]*models.News, error) {
	return s.newsRepo.GetPublished(ctx, limit)
}

// GetAllNews retrieves every news post for the admin surface
func (s *NewsService) GetAllNews(ctx context.Context) ([]*models.News, error) {
	return s.newsRepo.GetAll(ctx)
}

// UpdateNews updates an existing news post. The slug is kept stable so
// published URLs survive edits; clearing it regenerates from the
// current title.
func (s *NewsService) UpdateNews(ctx context.Context, news *models.News) error {
	if err := s.validateNews(news); err != nil {
		return err
	}

	if news.Slug == "" {
		slug, err := slugify.MakeUnique(ctx, news.Title, s.newsRepo.SlugExists)
		if err != nil {
			return err
		}
		news.Slug = slug
	}

	return s.newsRepo.Update(ctx, news)
}

// DeleteNews deletes a news post by ID
func (s *NewsService) DeleteNews(ctx context.Context, id int64) error {
	return s.newsRepo.Delete(ctx, id)
}
