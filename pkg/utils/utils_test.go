package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	h, err := HashPassword("p@ss")
	require.NoError(t, err)
	assert.True(t, CheckPassword("p@ss", h))
	assert.False(t, CheckPassword("wrong", h))

	_, err = HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 32)
	assert.NotContains(t, a, "-")
	assert.NotEqual(t, a, b)
}
