package auth

import (
	"fmt"
	"regexp"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateEmail reports whether s looks like a well-formed email address.
// Format only, no DNS or deliverability check.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePassword checks password strength. The first failing rule wins:
// minimum length, then uppercase, lowercase and digit presence. The returned
// message names the failed rule and is safe to show to the caller.
func ValidatePassword(s string, minLength int) (bool, string) {
	if len(s) < minLength {
		return false, fmt.Sprintf("Password must be at least %d characters long", minLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasLower {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasDigit {
		return false, "Password must contain at least one number"
	}
	return true, "Password is valid"
}
