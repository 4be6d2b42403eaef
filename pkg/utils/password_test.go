package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("wrong password", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword("same password", h1))
	assert.True(t, VerifyPassword("same password", h2))
}

func TestVerifyPassword_BadHash(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
}
