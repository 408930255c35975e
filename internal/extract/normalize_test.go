package extract

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
		{"Empty input", "", ""},
		{"Whitespace only", "  \t \n\n ", ""},
		{"CRLF to LF", "line1\r\nline2", "line1\nline2"},
		{"Bare CR to LF", "line1\rline2", "line1\nline2"},
		{"Space runs collapse", "a    b\t\tc", "a b c"},
		{"Trailing whitespace stripped", "line1   \nline2", "line1\nline2"},
		{"Leading whitespace stripped", "line1\n   line2", "line1\nline2"},
		{"Blank runs collapse to one blank line", "a\n\n\n\n\nb", "a\n\nb"},
		{"Single blank line survives", "a\n\nb", "a\n\nb"},
		{"Non-breaking space becomes space", "a\u00a0b", "a b"},
		{"En-dash becomes hyphen", "2019–2022", "2019-2022"},
		{"Em-dash becomes hyphen", "skills — none", "skills - none"},
		{"Curly double quotes become straight", "“hello”", `"hello"`},
		{"Curly single quotes become straight", "‘hi’", "'hi'"},
		{"Control characters stripped", "a\x00b\x07c\x7fd", "abcd"},
		{"Surrounding whitespace trimmed", "  hello  ", "hello"},
		{
			name:     "Mixed messy document",
			input:    "Hello  \u00a0World \r\n\r\n\r\nNext",
			expected: "Hello World\n\nNext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Hello  \u00a0World \r\n\r\n\r\nNext",
		"a\n\n\n\nb\t\tc  –  d",
		"plain text already clean",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalizing twice should equal normalizing once for %q", input)
	}
}
