package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT(7, "vendedor@alluma.test", "vendedor", secret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	t.Run("Valid token round-trips claims", func(t *testing.T) {
		claims, err := ValidateJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "vendedor@alluma.test", claims.Email)
		assert.Equal(t, "vendedor", claims.Role)
	})

	t.Run("Wrong secret rejected", func(t *testing.T) {
		_, err := ValidateJWT(token, "otro-secreto")
		assert.Error(t, err)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		_, err := ValidateJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}
