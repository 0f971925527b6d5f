package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// JoinService handles membership applications from the public join form
type JoinService struct {
	joinRepo *repositories.JoinRequestRepository
}

// NewJoinService creates a new join service instance
func NewJoinService(joinRepo *repositories.JoinRequestRepository) *JoinService {
	return &JoinService{
		joinRepo: joinRepo,
	}
}

// Validate checks the form and returns one error per offending field.
// Whitespace-only values count as missing.
func (s *JoinService) Validate(form *dto.JoinRequestForm) *dto.ValidationErrors {
	errs := dto.NewValidationErrors()

	form.FullName = strings.TrimSpace(form.FullName)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.Profession = strings.TrimSpace(form.Profession)
	form.Message = strings.TrimSpace(form.Message)

	if form.FullName == "" {
		errs.AddError("full_name", "Full name is required")
	}
	if form.Email == "" {
		errs.AddError("email", "Email is required")
	} else if !emailPattern.MatchString(form.Email) {
		errs.AddError("email", "Email is not a valid address")
	}
	if form.Phone == "" {
		errs.AddError("phone", "Phone is required")
	}
	if form.Profession == "" {
		errs.AddError("profession", "Profession is required")
	}
	if form.Message == "" {
		errs.AddError("message", "Message is required")
	}

	return errs
}

// Submit validates and stores a membership application. Field errors
// are returned separately from storage errors so the controller can
// render them per field.
func (s *JoinService) Submit(ctx context.Context, form *dto.JoinRequestForm) (*models.JoinRequest, *dto.ValidationErrors, error) {
	if errs := s.Validate(form); errs.HasErrors() {
		return nil, errs, nil
	}

	request := &models.JoinRequest{
		FullName:   form.FullName,
		Email:      form.Email,
		Phone:      form.Phone,
		Profession: form.Profession,
		Message:    form.Message,
	}

	if err := s.joinRepo.Create(ctx, request); err != nil {
		return nil, nil, err
	}

	logger.Info().
		Int64("id", request.ID).
		Str("email", request.Email).
		Msg("Join request submitted")

	return request, nil, nil
}

// List retrieves a page of join requests for the admin surface
func (s *JoinService) List(ctx context.Context, page, size int) ([]*models.JoinRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return s.joinRepo.GetPage(ctx, size, (page-1)*size)
}

// Delete removes a processed join request
func (s *JoinService) Delete(ctx context.Context, id int64) error {
	return s.joinRepo.Delete(ctx, id)
}
