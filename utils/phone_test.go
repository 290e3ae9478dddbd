package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+1 (555) 123-4567", "15551234567"},
		{"1-555-123-4567", "15551234567"},
		{"  15551234567  ", "15551234567"},
		{"555.123.4567", "5551234567"},
		{"call me", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizePhoneNumber(tt.input), "input: %q", tt.input)
	}
}

func TestNormalizePhoneNumber_SameNumberSameKey(t *testing.T) {
	formats := []string{
		"+1 (555) 123-4567",
		"1 555 123 4567",
		"15551234567",
	}

	for _, f := range formats {
		assert.Equal(t, "15551234567", NormalizePhoneNumber(f))
	}
}
