package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fittrack-dev/fittrack/internal/validate"
)

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		minLen int
		maxLen int
		wantOK bool
	}{
		{name: "valid", value: "Leg Day", minLen: 1, maxLen: 100, wantOK: true},
		{name: "empty", value: "", minLen: 1, maxLen: 100, wantOK: false},
		{name: "too short", value: "ab", minLen: 3, maxLen: 100, wantOK: false},
		{name: "too long", value: strings.Repeat("x", 101), minLen: 1, maxLen: 100, wantOK: false},
		{name: "exactly min", value: "abc", minLen: 3, maxLen: 100, wantOK: true},
		{name: "exactly max", value: strings.Repeat("x", 100), minLen: 1, maxLen: 100, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := validate.String("Field", tt.value, tt.minLen, tt.maxLen)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		email  string
		wantOK bool
	}{
		{"alice@example.com", true},
		{"alice.smith+tag@sub.example.co", true},
		{"", false},
		{"alice", false},
		{"alice@example", false},
		{"alice@@example.com", false},
		{"al ice@example.com", false},
		{"alice@exa mple.com", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			ok, _ := validate.Email(tt.email)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPassword(t *testing.T) {
	ok, _ := validate.Password("secret1")
	assert.True(t, ok)

	ok, msg := validate.Password("short")
	assert.False(t, ok)
	assert.Contains(t, msg, "at least 6")

	ok, msg = validate.Password("")
	assert.False(t, ok)
	assert.Equal(t, "Password is required", msg)
}

func TestDate(t *testing.T) {
	tests := []struct {
		value  string
		wantOK bool
	}{
		{"2024-01-01", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"01-01-2024", false},
		{"2024/01/01", false},
		{"yesterday", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			ok, _ := validate.Date("Date", tt.value)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNumericChecks(t *testing.T) {
	ok, _ := validate.IntMin("Sets", 1, 1)
	assert.True(t, ok)

	ok, _ = validate.IntMin("Sets", 0, 1)
	assert.False(t, ok)

	ok, _ = validate.PositiveFloat("Weight", 0.5)
	assert.True(t, ok)

	ok, _ = validate.PositiveFloat("Weight", 0)
	assert.False(t, ok)

	ok, _ = validate.NonNegativeFloat("Weight", 0)
	assert.True(t, ok)

	ok, _ = validate.NonNegativeFloat("Weight", -1)
	assert.False(t, ok)
}

func TestSignupPayloadCollectsAllErrors(t *testing.T) {
	errs := validate.SignupPayload("ab", "not-an-email", "123")
	assert.Len(t, errs, 3)

	// error order follows field order
	assert.Contains(t, errs[0], "Username")
	assert.Contains(t, errs[1], "email")
	assert.Contains(t, errs[2], "Password")
}

func TestSignupPayloadEmailOptional(t *testing.T) {
	errs := validate.SignupPayload("alice", "", "secret1")
	assert.Empty(t, errs)
}

func TestWorkoutItemPayload(t *testing.T) {
	weight := 50.0
	assert.Empty(t, validate.WorkoutItemPayload(3, 10, &weight))
	assert.Empty(t, validate.WorkoutItemPayload(1, 1, nil))

	zero := 0.0
	assert.Empty(t, validate.WorkoutItemPayload(2, 5, &zero))

	negative := -5.0
	errs := validate.WorkoutItemPayload(0, 0, &negative)
	assert.Len(t, errs, 3)
}

func TestProfileUpdatePayload(t *testing.T) {
	assert.Empty(t, validate.ProfileUpdatePayload("alice", ""))
	assert.Empty(t, validate.ProfileUpdatePayload("", "alice@x.com"))
	assert.NotEmpty(t, validate.ProfileUpdatePayload("", ""))
	assert.NotEmpty(t, validate.ProfileUpdatePayload("ab", "bad-email"))
}

func TestWeightLogPayload(t *testing.T) {
	assert.Empty(t, validate.WeightLogPayload(80, "2024-01-01"))
	assert.Empty(t, validate.WeightLogPayload(80, ""))
	assert.NotEmpty(t, validate.WeightLogPayload(0, "2024-01-01"))
	assert.NotEmpty(t, validate.WeightLogPayload(80, "bad"))
}
