package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/casher/backend/src/config"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	config.Cfg = &config.AppConfig{
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
	return NewAuthService("test-jwt-secret-key-at-least-32-bytes!!")
}

func TestHashAndComparePassword(t *testing.T) {
	service := newTestAuthService(t)

	hash, err := service.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, service.CompareHashAndPassword(hash, "correct horse battery staple"))
	assert.Error(t, service.CompareHashAndPassword(hash, "wrong password"))
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestAuthService(t)

	token, err := service.GenerateToken("42")
	require.NoError(t, err)

	userID, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", userID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	service := newTestAuthService(t)

	token, err := service.GenerateToken("42")
	require.NoError(t, err)

	other := NewAuthService("a-completely-different-secret-key!!!!!!")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := newTestAuthService(t)

	_, err := service.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestGenerateRandomTokenIsUnique(t *testing.T) {
	service := newTestAuthService(t)

	first, err := service.GenerateRandomToken()
	require.NoError(t, err)
	second, err := service.GenerateRandomToken()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
