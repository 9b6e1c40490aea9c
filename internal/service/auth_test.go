package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrivue/backend/internal/models"
)

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Jess", "jess@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Jess", claims.Name)

	// Registration creates an empty health profile alongside the user.
	var profile models.HealthProfile
	require.NoError(t, db.Where("user_id = ?", claims.UserID).First(&profile).Error)
	assert.Zero(t, profile.CalorieNeeds)

	loginToken, err := svc.Login("jess@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestAuthServiceDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("Jess", "jess@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register("Other", "jess@example.com", "password456")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthServiceInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("Jess", "jess@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Login("jess@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceRejectsTamperedToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Jess", "jess@example.com", "password123")
	require.NoError(t, err)

	other := NewAuthService(db, "different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
