package utils

import "regexp"

// sanitize.go - Input validation utilities

// ValidateUsername checks if a GitHub username contains only allowed
// characters. Returns true if valid.
func ValidateUsername(username string) bool {
	// Alphanumeric and hyphens, 1-39 characters, GitHub's own rules
	re := regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)
	return re.MatchString(username)
}

// TruncateString safely truncates a string to max length
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
