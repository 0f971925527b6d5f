package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/filestorage"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/logger"
)

// GalleryService handles albums and their images
type GalleryService struct {
	galleryRepo *repositories.GalleryRepository
	storage     *filestorage.LocalStorage
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService(galleryRepo *repositories.GalleryRepository, storage *filestorage.LocalStorage) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		storage:     storage,
	}
}

// CreateAlbum creates a new album
func (s *GalleryService) CreateAlbum(ctx context.Context, album *models.Album) error {
	if strings.TrimSpace(album.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.galleryRepo.CreateAlbum(ctx, album)
}

// GetAlbumByID retrieves an album with its images
func (s *GalleryService) GetAlbumByID(ctx context.Context, id int64) (*models.Album, error) {
	return s.galleryRepo.GetAlbumByID(ctx, id)
}

// GetPublishedAlbums retrieves published albums, newest first
func (s *GalleryService) GetPublishedAlbums(ctx context.Context) ([]*models.Album, error) {
	return s.galleryRepo.GetAlbums(ctx, true)
}

// GetAllAlbums retrieves every album for the admin surface
func (s *GalleryService) GetAllAlbums(ctx context.Context) ([]*models.Album, error) {
	return s.galleryRepo.GetAlbums(ctx, false)
}

// UpdateAlbum updates an existing album
func (s *GalleryService) UpdateAlbum(ctx context.Context, album *models.Album) error {
	if strings.TrimSpace(album.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.galleryRepo.UpdateAlbum(ctx, album)
}

// DeleteAlbum deletes an album and removes its stored image files
func (s *GalleryService) DeleteAlbum(ctx context.Context, id int64) error {
	album, err := s.galleryRepo.GetAlbumByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.galleryRepo.DeleteAlbum(ctx, id); err != nil {
		return err
	}

	// Stored files are cleaned up best-effort after the rows are gone
	for _, img := range album.Images {
		if err := s.storage.DeleteFile(img.Image); err != nil {
			logger.Warn().Err(err).Str("image", img.Image).Msg("Failed to delete album image file")
		}
	}
	if album.CoverImage != "" {
		if err := s.storage.DeleteFile(album.CoverImage); err != nil {
			logger.Warn().Err(err).Str("image", album.CoverImage).Msg("Failed to delete album cover file")
		}
	}

	return nil
}

// AddImage adds an image to an album
func (s *GalleryService) AddImage(ctx context.Context, image *models.GalleryImage) error {
	if strings.TrimSpace(image.Image) == "" {
		return fmt.Errorf("%w: image is required", apperrors.ErrValidationFailed)
	}
	if _, err := s.galleryRepo.GetAlbumByID(ctx, image.AlbumID); err != nil {
		return err
	}
	return s.galleryRepo.AddImage(ctx, image)
}

// DeleteImage deletes a gallery image and its stored file
func (s *GalleryService) DeleteImage(ctx context.Context, id int64) error {
	image, err := s.galleryRepo.GetImageByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.galleryRepo.DeleteImage(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(image.Image); err != nil {
		logger.Warn().Err(err).Str("image", image.Image).Msg("Failed to delete gallery image file")
	}

	return nil
}
