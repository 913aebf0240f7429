package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack-dev/fittrack/internal/models"
)

func TestSetPasswordStoresOnlyHash(t *testing.T) {
	var user models.User

	require.NoError(t, user.SetPassword("secret1"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "secret1")
}

func TestCheckPassword(t *testing.T) {
	var user models.User
	require.NoError(t, user.SetPassword("secret1"))

	assert.True(t, user.CheckPassword("secret1"))
	assert.False(t, user.CheckPassword("secret2"))
	assert.False(t, user.CheckPassword("Secret1"))
	assert.False(t, user.CheckPassword(""))
}

func TestSetPasswordSalts(t *testing.T) {
	var first, second models.User
	require.NoError(t, first.SetPassword("secret1"))
	require.NoError(t, second.SetPassword("secret1"))

	// bcrypt salts, so equal passwords never share a hash
	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)
}
