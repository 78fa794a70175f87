package utils

import (
	"testing"
	"time"

	"Backend-Hostel-Billing/src/services/sessions"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(ttl time.Duration) *sessions.Session {
	now := time.Now()
	return &sessions.Session{ID: "sid-1", RegNo: "S1", CreatedAt: now, ExpiresAt: now.Add(ttl)}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateSessionToken(secret, testSession(time.Hour))
	require.NoError(t, err)

	claims, err := ParseSessionToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, "S1", claims.RegNo)
}

func TestParseSessionTokenRejects(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateSessionToken([]byte("other"), testSession(time.Hour))
		require.NoError(t, err)
		_, err = ParseSessionToken(secret, token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateSessionToken(secret, testSession(-time.Minute))
		require.NoError(t, err)
		_, err = ParseSessionToken(secret, token)
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseSessionToken(secret, "")
		assert.Error(t, err)
	})

	t.Run("missing session id", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{RegNo: "S1"}).SignedString(secret)
		require.NoError(t, err)
		_, err = ParseSessionToken(secret, token)
		assert.Error(t, err)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, SessionClaims{SessionID: "sid-1"}).SignedString(secret)
		require.NoError(t, err)
		_, err = ParseSessionToken(secret, token)
		assert.Error(t, err)
	})
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(64)
	b := GenerateRandomString(64)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
