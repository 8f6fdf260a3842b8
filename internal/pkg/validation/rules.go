package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Profile password min length
	PasswordMinLength = 6

	// Score range for grades
	ScoreMin = 0
	ScoreMax = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidScore reports whether a score is inside the accepted grading range.
// Out-of-range scores are rejected, never clamped.
func IsValidScore(score int) bool {
	return score >= ScoreMin && score <= ScoreMax
}

// IsValidPassword reports whether a password meets the minimum length rule
// used for student profile updates.
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
