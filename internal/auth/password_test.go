package auth_test

import (
	"testing"

	"github.com/meridia/identity/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("p@ss1")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := hasher.Verify("p@ss1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordVerifyRejectsMalformedHash(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	_, err := hasher.Verify("p@ss1", "not-a-digest")
	assert.Error(t, err)
}

func TestPasswordHashesAreSalted(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	first, err := hasher.Hash("p@ss1")
	require.NoError(t, err)
	second, err := hasher.Hash("p@ss1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
