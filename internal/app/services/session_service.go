package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

// SessionService handles club sessions, their speakers and images
type SessionService struct {
	sessionRepo *repositories.SessionRepository
	leaderRepo  *repositories.LeaderRepository
}

// NewSessionService creates a new session service instance
func NewSessionService(sessionRepo *repositories.SessionRepository, leaderRepo *repositories.LeaderRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		leaderRepo:  leaderRepo,
	}
}

func (s *SessionService) validateSession(ctx context.Context, session *models.Session, speakerIDs []int64) error {
	if strings.TrimSpace(session.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if session.SessionDate.IsZero() {
		return fmt.Errorf("%w: session date is required", apperrors.ErrValidationFailed)
	}

	// Every listed speaker must be an existing leader
	if len(speakerIDs) > 0 {
		leaders, err := s.leaderRepo.GetByIDs(ctx, speakerIDs)
		if err != nil {
			return err
		}
		if len(leaders) != len(uniqueIDs(speakerIDs)) {
			return fmt.Errorf("%w: one or more speaker IDs do not exist", apperrors.ErrValidationFailed)
		}
	}

	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	var out []int64
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// CreateSession creates a session with its speaker links
func (s *SessionService) CreateSession(ctx context.Context, session *models.Session, speakerIDs []int64) error {
	if err := s.validateSession(ctx, session, speakerIDs); err != nil {
		return err
	}
	return s.sessionRepo.Create(ctx, session, uniqueIDs(speakerIDs))
}

// GetSessionByID retrieves a session with its speakers and images
func (s *SessionService) GetSessionByID(ctx context.Context, id int64) (*models.Session, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// GetPublishedSessions retrieves published sessions, most recent first
func (s *SessionService) GetPublishedSessions(ctx context.Context) ([]*models.Session, error) {
	return s.sessionRepo.GetSessions(ctx, true)
}

// GetAllSessions retrieves every session for the admin surface
func (s *SessionService) GetAllSessions(ctx context.Context) ([]*models.Session, error) {
	return s.sessionRepo.GetSessions(ctx, false)
}

// UpdateSession updates a session and replaces its speaker links
func (s *SessionService) UpdateSession(ctx context.Context, session *models.Session, speakerIDs []int64) error {
	if err := s.validateSession(ctx, session, speakerIDs); err != nil {
		return err
	}
	return s.sessionRepo.Update(ctx, session, uniqueIDs(speakerIDs))
}

// DeleteSession deletes a session by ID
func (s *SessionService) DeleteSession(ctx context.Context, id int64) error {
	return s.sessionRepo.Delete(ctx, id)
}

// AddImage adds an image to a session
func (s *SessionService) AddImage(ctx context.Context, image *models.SessionImage) error {
	if strings.TrimSpace(image.Image) == "" {
		return fmt.Errorf("%w: image is required", apperrors.ErrValidationFailed)
	}
	if _, err := s.sessionRepo.GetByID(ctx, image.SessionID); err != nil {
		return err
	}
	return s.sessionRepo.AddImage(ctx, image)
}

// DeleteImage deletes a session image by ID
func (s *SessionService) DeleteImage(ctx context.Context, id int64) error {
	return s.sessionRepo.DeleteImage(ctx, id)
}
