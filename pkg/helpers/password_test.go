package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, CompareHashAndPassword(hash, "hunter2secret"))
	assert.False(t, CompareHashAndPassword(hash, "wrongpassword"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "hunter2secret"))
}

func TestPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	require.Error(t, err)

	hash, err := HashPassword(strings.Repeat("a", 72))
	require.NoError(t, err)
	assert.True(t, CompareHashAndPassword(hash, strings.Repeat("a", 72)))
}

func TestPasswordHashIsSalted(t *testing.T) {
	h1, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	h2, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
