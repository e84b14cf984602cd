package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	// Two hashes of the same password must differ (random salt)
	other, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct-horse"))
	assert.False(t, CheckPassword(hash, "wrong-horse"))
	assert.False(t, CheckPassword("not-a-hash", "correct-horse"))
}
