package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, accessExp, err := m.GenerateAccessToken("user-1", "ada@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), accessExp, 5*time.Second)

	claims, err := m.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)

	refresh, refreshExp, err := m.GenerateRefreshToken("user-1", "ada@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), refreshExp, 5*time.Second)

	rc, err := m.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", rc.UserID)
}

func TestJWTSecretsAreDistinct(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, _, err := m.GenerateAccessToken("user-1", "ada@example.com")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken("user-1", "ada@example.com")
	require.NoError(t, err)

	_, err = m.ParseRefreshToken(access)
	assert.Error(t, err)
	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTRejectsForeignSignature(t *testing.T) {
	a := NewJWTManager("secret-a", "secret-a", time.Hour, time.Hour)
	b := NewJWTManager("secret-b", "secret-b", time.Hour, time.Hour)

	tok, _, err := a.GenerateAccessToken("user-1", "ada@example.com")
	require.NoError(t, err)

	_, err = b.ParseAccessToken(tok)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	tok, _, err := m.GenerateAccessToken("user-1", "ada@example.com")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(tok)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, time.Hour)
	_, err := m.ParseAccessToken("not.a.jwt")
	assert.Error(t, err)
}
