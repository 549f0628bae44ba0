package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("octocat"))
	assert.True(t, ValidateUsername("a"))
	assert.True(t, ValidateUsername("my-user-1"))
	assert.False(t, ValidateUsername(""))
	assert.False(t, ValidateUsername("-leading"))
	assert.False(t, ValidateUsername("trailing-"))
	assert.False(t, ValidateUsername("no spaces"))
	assert.False(t, ValidateUsername(strings.Repeat("a", 40)))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", TruncateString("abc", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}
