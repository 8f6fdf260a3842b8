package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterForScore(t *testing.T) {
	cases := []struct {
		score  int
		letter string
	}{
		{100, "A+"},
		{90, "A+"},
		{89, "A"},
		{85, "A"},
		{84, "A-"},
		{80, "A-"},
		{79, "B+"},
		{75, "B+"},
		{74, "B"},
		{70, "B"},
		{69, "B-"},
		{65, "B-"},
		{64, "C+"},
		{60, "C+"},
		{59, "C"},
		{55, "C"},
		{54, "C-"},
		{50, "C-"},
		{49, "D"},
		{40, "D"},
		{39, "F"},
		{1, "F"},
		{0, "F"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.letter, LetterForScore(tc.score), "score %d", tc.score)
	}
}

func TestRoleTypeIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleStudent.IsValid())
	assert.False(t, RoleType("teacher").IsValid())
	assert.False(t, RoleType("").IsValid())
	assert.False(t, RoleType("ADMIN").IsValid())
}
