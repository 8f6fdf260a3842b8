package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co",
		"j_d%x@example.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"jane",
		"jane@",
		"@example.com",
		"jane@example",
		"jane doe@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidScore(t *testing.T) {
	assert.True(t, IsValidScore(0))
	assert.True(t, IsValidScore(100))
	assert.True(t, IsValidScore(57))

	assert.False(t, IsValidScore(-1))
	assert.False(t, IsValidScore(101))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("123456"))
	assert.True(t, IsValidPassword("longer-password"))

	assert.False(t, IsValidPassword(""))
	assert.False(t, IsValidPassword("12345"))
}
