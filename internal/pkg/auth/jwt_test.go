package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test-issuer",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService(time.Hour)
	admin := &models.AdminUser{ID: 7, Email: "admin@kab.ac.ug"}

	access, refresh, expiresIn, err := svc.GenerateTokenPair(admin)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID)
	assert.Equal(t, "admin@kab.ac.ug", claims.Email)
	assert.Equal(t, AdminRole, claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	admin := &models.AdminUser{ID: 1, Email: "admin@kab.ac.ug"}

	access, _, _, err := svc.GenerateTokenPair(admin)
	assert.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(access)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)
	admin := &models.AdminUser{ID: 1, Email: "admin@kab.ac.ug"}

	access, _, _, err := svc.GenerateTokenPair(admin)
	assert.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateEmptyToken(t *testing.T) {
	svc := newTestService(time.Hour)
	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		wantErr  bool
	}{
		{"bearer prefix stripped", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token accepted", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header rejected", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}
