package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightwarehouse-service/internal/domain/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.CreateAccessToken("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.SubjectFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.CreateAccessToken("user@example.com")
	require.NoError(t, err)

	_, err = verifier.SubjectFromToken(token)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestTokenExpiredRejected(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.CreateAccessToken("user@example.com")
	require.NoError(t, err)

	_, err = svc.SubjectFromToken(token)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestTokenGarbageRejected(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.SubjectFromToken("not.a.token")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}
