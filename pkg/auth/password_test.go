package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secreto123", hash)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)

	t.Run("Correct password", func(t *testing.T) {
		assert.True(t, CheckPassword(hash, "secreto123"))
	})

	t.Run("Wrong password", func(t *testing.T) {
		assert.False(t, CheckPassword(hash, "otra-clave"))
	})

	t.Run("Invalid hash", func(t *testing.T) {
		assert.False(t, CheckPassword("not-a-hash", "secreto123"))
	})
}
