package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tokenHash, err := HashPassword("api-token")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenHash)

	cost, err := bcrypt.Cost([]byte(tokenHash))
	require.NoError(t, err)
	assert.Equal(t, passwordHashCost, cost)

	assert.True(t, CheckPasswordHash("api-token", tokenHash))
	assert.False(t, CheckPasswordHash("api-token2", tokenHash))
	assert.False(t, CheckPasswordHash("api-token", "not-a-hash"))
}
