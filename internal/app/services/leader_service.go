package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

// LeaderService handles leader-related operations
type LeaderService struct {
	leaderRepo *repositories.LeaderRepository
}

// NewLeaderService creates a new leader service instance
func NewLeaderService(leaderRepo *repositories.LeaderRepository) *LeaderService {
	return &LeaderService{
		leaderRepo: leaderRepo,
	}
}

func validLeaderCategory(category models.LeaderCategory) bool {
	switch category {
	case models.CategoryStudent, models.CategoryExecutive, models.CategoryFaculty:
		return true
	}
	return false
}

func (s *LeaderService) validateLeader(leader *models.Leader) error {
	if strings.TrimSpace(leader.FullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(leader.Position) == "" {
		return fmt.Errorf("%w: position cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validLeaderCategory(leader.Category) {
		return fmt.Errorf("%w: unknown leader category %q", apperrors.ErrValidationFailed, leader.Category)
	}
	if leader.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", apperrors.ErrValidationFailed)
	}
	if leader.EndDate != nil && leader.EndDate.Before(leader.StartDate) {
		return fmt.Errorf("%w: end date cannot precede start date", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateLeader creates a new leader
func (s *LeaderService) CreateLeader(ctx context.Context, leader *models.Leader) error {
	if err := s.validateLeader(leader); err != nil {
		return err
	}
	return s.leaderRepo.Create(ctx, leader)
}

// GetLeaderByID retrieves a leader by ID
func (s *LeaderService) GetLeaderByID(ctx context.Context, id int64) (*models.Leader, error) {
	return s.leaderRepo.GetByID(ctx, id)
}

// GetAllLeaders retrieves every leader, past terms included, with
// current terms listed first
func (s *LeaderService) GetAllLeaders(ctx context.Context) ([]*models.Leader, error) {
	leaders, err := s.leaderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sortLeadersCurrentFirst(leaders, time.Now())
	return leaders, nil
}

// sortLeadersCurrentFirst orders the all-leaders listing: current terms
// before past ones, then position, then name.
func sortLeadersCurrentFirst(leaders []*models.Leader, now time.Time) {
	sort.SliceStable(leaders, func(i, j int) bool {
		ci, cj := leaders[i].IsCurrent(now), leaders[j].IsCurrent(now)
		if ci != cj {
			return ci
		}
		if leaders[i].Position != leaders[j].Position {
			return leaders[i].Position < leaders[j].Position
		}
		return leaders[i].FullName < leaders[j].FullName
	})
}

// GetCurrentLeaders retrieves the current leaders grouped for the
// leaders page. A leader is current when their term end is unset or has
// not passed as of the given time.
func (s *LeaderService) GetCurrentLeaders(ctx context.Context, now time.Time) (*dto.LeadersPage, error) {
	leaders, err := s.leaderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	page := &dto.LeadersPage{}
	for _, leader := range leaders {
		if !leader.IsCurrent(now) {
			continue
		}
		switch leader.Category {
		case models.CategoryStudent:
			page.StudentLeaders = append(page.StudentLeaders, leader)
		case models.CategoryExecutive:
			page.ExecutiveBoard = append(page.ExecutiveBoard, leader)
		case models.CategoryFaculty:
			page.FacultyMentors = append(page.FacultyMentors, leader)
		}
	}

	return page, nil
}

// UpdateLeader updates an existing leader
func (s *LeaderService) UpdateLeader(ctx context.Context, leader *models.Leader) error {
	if err := s.validateLeader(leader); err != nil {
		return err
	}
	return s.leaderRepo.Update(ctx, leader)
}

// DeleteLeader deletes a leader by ID
func (s *LeaderService) DeleteLeader(ctx context.Context, id int64) error {
	return s.leaderRepo.Delete(ctx, id)
}
