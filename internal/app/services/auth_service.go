package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models/dto"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/repositories"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/auth"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/logger"
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  *repositories.AdminUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminRepo *repositories.AdminUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies admin credentials and issues a token pair. An unknown
// email and a wrong password produce the same error so the endpoint
// does not leak which admins exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID, time.Now()); err != nil {
		// Login still succeeds; the timestamp is informational
		logger.Warn().Err(err).Int64("adminId", admin.ID).Msg("Failed to record last login")
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
	}, nil
}

// GetAdmin retrieves the authenticated admin's account
func (s *AuthService) GetAdmin(ctx context.Context, id int64) (*models.AdminUser, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// ChangePassword verifies the current password and stores a new hash
func (s *AuthService) ChangePassword(ctx context.Context, adminID int64, currentPassword, newPassword string) error {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(admin.Password, currentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidationFailed)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.adminRepo.UpdatePassword(ctx, adminID, hash)
}
