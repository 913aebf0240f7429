package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-dev/fittrack/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenExpired(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue(42)
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenWrongKey(t *testing.T) {
	issuer := auth.NewTokenManager("one-secret", time.Hour)
	verifier := auth.NewTokenManager("another-secret", time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", time.Hour)

	_, err := manager.Verify("not.a.token")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)

	_, err = manager.Verify("")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenMalformedSubject(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", time.Hour)

	// Sign with the right key but a non-numeric subject.
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-user-id",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, auth.ErrMalformedSubject)
}

func TestTokenRejectsUnexpectedSigningMethod(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", time.Hour)

	// alg=none tokens must never verify.
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}
