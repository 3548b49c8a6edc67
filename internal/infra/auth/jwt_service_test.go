package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/config"
)

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{JWTSecret: "test_secret_key_very_long_for_testing"}})
	require.NoError(t, err)

	s := svc.(*jwtService)
	s.now = func() time.Time { return now }

	return s
}

func TestJWTService_MintAndVerify(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, now)

	token, err := svc.Mint("uid-1", "ana@example.cl", "company-1")
	require.NoError(t, err)

	verified, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", verified.UID)
	assert.Equal(t, "ana@example.cl", verified.Email)
	assert.Equal(t, "company-1", verified.CompanyID)
	assert.True(t, now.Add(defaultTokenTTL).Equal(verified.ExpiresAt))
}

func TestJWTService_NoCompanyClaim(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	token, err := svc.Mint("uid-1", "ana@example.cl", "")
	require.NoError(t, err)

	verified, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Empty(t, verified.CompanyID)
}

func TestJWTService_Expired(t *testing.T) {
	issuedAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, issuedAt)

	token, err := svc.Mint("uid-1", "ana@example.cl", "")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * defaultTokenTTL) }
	_, err = svc.VerifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	wrongSecret := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "uid-1", "iss": issuer, "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := wrongSecret.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), signed)
	assert.Error(t, err)

	wrongIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "uid-1", "iss": "someone-else", "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err = wrongIssuer.SignedString(svc.secret)
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), signed)
	assert.Error(t, err)

	_, err = svc.VerifyToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
}
