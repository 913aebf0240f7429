package validate

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

const (
	UsernameMinLen = 3
	NameMinLen     = 1
	NameMaxLen     = 100
	PasswordMinLen = 6
	FieldMaxLen    = 255
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// String checks presence and a [minLen, maxLen] length window.
func String(field, value string, minLen, maxLen int) (bool, string) {
	if value == "" {
		return false, fmt.Sprintf("%s is required", field)
	}
	if len(value) < minLen || len(value) > maxLen {
		return false, fmt.Sprintf("%s must be between %d and %d characters", field, minLen, maxLen)
	}
	return true, ""
}

// Email accepts a conservative local@domain.tld shape.
func Email(value string) (bool, string) {
	if value == "" {
		return false, "Email is required"
	}
	if !emailPattern.MatchString(value) {
		return false, "Invalid email format"
	}
	return true, ""
}

func Password(value string) (bool, string) {
	if value == "" {
		return false, "Password is required"
	}
	if len(value) < PasswordMinLen {
		return false, fmt.Sprintf("Password must be at least %d characters long", PasswordMinLen)
	}
	return true, ""
}

// IntMin checks an integer lower bound.
func IntMin(field string, value, min int) (bool, string) {
	if value < min {
		return false, fmt.Sprintf("%s must be at least %d", field, min)
	}
	return true, ""
}

// PositiveFloat rejects zero and negative values.
func PositiveFloat(field string, value float64) (bool, string) {
	if value <= 0 {
		return false, fmt.Sprintf("%s must be a positive number", field)
	}
	return true, ""
}

// NonNegativeFloat rejects negative values but allows zero.
func NonNegativeFloat(field string, value float64) (bool, string) {
	if value < 0 {
		return false, fmt.Sprintf("%s must not be negative", field)
	}
	return true, ""
}

// Date checks the fixed YYYY-MM-DD format.
func Date(field, value string) (bool, string) {
	if value == "" {
		return false, fmt.Sprintf("%s is required", field)
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return false, fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", field)
	}
	return true, ""
}
