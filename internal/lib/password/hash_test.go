package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := GetHash("superpassword")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "superpassword", hash)

	assert.NoError(t, CompareHash(hash, "superpassword"))
	assert.Error(t, CompareHash(hash, "wrongpassword"))
}

func TestGetHash_DifferentSalts(t *testing.T) {
	first, err := GetHash("superpassword")
	require.NoError(t, err)
	second, err := GetHash("superpassword")
	require.NoError(t, err)

	// bcrypt добавляет соль, хэши не должны совпадать
	assert.NotEqual(t, first, second)
}
