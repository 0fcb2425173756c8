package phone_test

import (
	"testing"

	"casa/shared/phone"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "11 digits starting with area code gets country code",
			input:    "11987654321",
			expected: "5511987654321",
		},
		{
			name:     "formatted local number with punctuation",
			input:    "(11) 98765-4321",
			expected: "5511987654321",
		},
		{
			name:     "10 digits gets country and area code",
			input:    "3456789012",
			expected: "55113456789012",
		},
		{
			name:     "13 digits already canonical stays unchanged",
			input:    "5511987654321",
			expected: "5511987654321",
		},
		{
			name:     "13 digits with plus sign and spaces",
			input:    "+55 11 98765-4321",
			expected: "5511987654321",
		},
		{
			name:     "9 digits falls through unchanged",
			input:    "987654321",
			expected: "987654321",
		},
		{
			name:     "11 digits not starting with area code falls through",
			input:    "21987654321",
			expected: "21987654321",
		},
		{
			name:     "13 digits with foreign country code falls through",
			input:    "4411987654321",
			expected: "4411987654321",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "letters only",
			input:    "not-a-number",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := phone.Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
