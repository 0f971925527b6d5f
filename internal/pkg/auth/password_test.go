package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-passw0rd", hash)

	assert.True(t, CheckPassword(hash, "s3cret-passw0rd"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-input")
	assert.NoError(t, err)
	second, err := HashPassword("same-input")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
