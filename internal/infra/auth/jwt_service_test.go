package auth

import (
	"testing"
	"time"

	"trucktrace/config"
	"trucktrace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)

	gotID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Empty(t, claims.Purpose)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	svc.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	token, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.ValidateAccessToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)
	token, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	other := newTestJWTService(t)
	other.accessSecret = []byte("another_secret")

	_, err = other.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TTLFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.AccessTokenTTL())
}

func TestJWTService_ResetToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateResetToken(userID, "hash-v1")
	require.NoError(t, err)

	gotID, err := svc.ValidateResetToken(token, func(id uuid.UUID) (string, error) {
		assert.Equal(t, userID, id)

		return "hash-v1", nil
	})
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)

	// Once the password changes the old token no longer verifies.
	_, err = svc.ValidateResetToken(token, func(uuid.UUID) (string, error) { return "hash-v2", nil })
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_TokenPurposesDoNotMix(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	resetToken, err := svc.GenerateResetToken(userID, "hash")
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(resetToken)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))

	accessToken, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	_, err = svc.ValidateResetToken(accessToken, func(uuid.UUID) (string, error) { return "hash", nil })
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}
