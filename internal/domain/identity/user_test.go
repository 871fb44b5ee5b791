package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with normalized email", func(t *testing.T) {
		user, err := NewUser("  Maker@Example.COM ", "$2a$10$hash", "Maker")

		require.NoError(t, err)
		assert.Equal(t, "maker@example.com", user.Email)
		assert.Equal(t, "Maker", user.DisplayName)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "$2a$10$hash", "")
		assert.Error(t, err)
	})

	t.Run("rejects empty password hash", func(t *testing.T) {
		_, err := NewUser("maker@example.com", "", "")
		assert.Error(t, err)
	})
}

func TestUserChangePassword(t *testing.T) {
	user, err := NewUser("maker@example.com", "$2a$10$old", "")
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("$2a$10$new"))
	assert.Equal(t, "$2a$10$new", user.PasswordHash)

	assert.Error(t, user.ChangePassword(""))
}
