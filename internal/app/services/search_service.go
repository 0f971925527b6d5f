package services

import (
	"context"
	"strings"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
)

// SearchService runs the sitewide multi-type search
type SearchService struct {
	leaderRepo  *repositories.LeaderRepository
	galleryRepo *repositories.GalleryRepository
	sessionRepo *repositories.SessionRepository
}

// NewSearchService creates a new search service instance
func NewSearchService(leaderRepo *repositories.LeaderRepository, galleryRepo *repositories.GalleryRepository, sessionRepo *repositories.SessionRepository) *SearchService {
	return &SearchService{
		leaderRepo:  leaderRepo,
		galleryRepo: galleryRepo,
		sessionRepo: sessionRepo,
	}
}

// Search finds leaders, albums and sessions matching the query. Results
// are concatenated per type in each type's own order; there is no
// cross-type ranking or deduplication. A blank query matches nothing.
func (s *SearchService) Search(ctx context.Context, query string) (*dto.SearchResults, error) {
	query = strings.TrimSpace(query)
	results := &dto.SearchResults{
		Query:    query,
		Leaders:  []*models.Leader{},
		Albums:   []*models.Album{},
		Sessions: []*models.Session{},
	}
	if query == "" {
		return results, nil
	}

	leaders, err := s.leaderRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if leaders != nil {
		results.Leaders = leaders
	}

	albums, err := s.galleryRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if albums != nil {
		results.Albums = albums
	}

	sessions, err := s.sessionRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if sessions != nil {
		results.Sessions = sessions
	}

	results.Total = len(results.Leaders) + len(results.Albums) + len(results.Sessions)
	return results, nil
}
