package jwt

import (
	"testing"
	"time"

	"medical-appointments-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string, expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, Algorithm: "HS256", AccessExpiry: expiry})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService("secret", 24*time.Hour)

	token, tokenID, err := svc.GenerateAccessToken(7, "ana@example.com", "paciente")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AccountID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "paciente", claims.Role)
	assert.Equal(t, tokenID, claims.TokenID())
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestService("secret", time.Hour).GenerateAccessToken(1, "a@b.co", "admin")
	require.NoError(t, err)

	_, err = newTestService("other", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestService("secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.GenerateAccessToken(1, "a@b.co", "admin")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsOtherAlgorithm(t *testing.T) {
	token, _, err := NewJWTService(config.JWTConfig{Secret: "secret", Algorithm: "HS512", AccessExpiry: time.Hour}).
		GenerateAccessToken(1, "a@b.co", "admin")
	require.NoError(t, err)

	_, err = newTestService("secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := newTestService("secret", time.Hour).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
