package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Acme Corp",
			expected: "acme corp",
		},
		{
			name:     "strips punctuation",
			input:    "Acme, Corp. (Pvt.)",
			expected: "acme corp pvt",
		},
		{
			name:     "trims whitespace",
			input:    "  Ghost LLC.  ",
			expected: "ghost llc",
		},
		{
			name:     "punctuation only",
			input:    "-- !!! --",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "digits survive",
			input:    "Area 51 Labs!",
			expected: "area 51 labs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Acme Corp",
		"  Shadow-Industries, Pvt. Ltd.  ",
		"GHOST LLC!!!",
		"",
		"already normal",
	}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", s)
	}
}
