package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashYVerifyPassword(t *testing.T) {
	hash, err := HashPassword("caramelo-secreto")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := VerifyPassword("caramelo-secreto", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("otro-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordHashMalformado(t *testing.T) {
	_, err := VerifyPassword("x", "no-es-un-hash")
	assert.Error(t, err)

	_, err = VerifyPassword("x", "$2a$10$hashdebcrypt")
	assert.Error(t, err)
}

func TestHashesDistintosPorSalt(t *testing.T) {
	h1, err := HashPassword("1234")
	require.NoError(t, err)
	h2, err := HashPassword("1234")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
