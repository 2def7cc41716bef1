package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHeaders(t *testing.T) {
	headers := map[string][]string{
		"Api-Key":       {"azure-secret"},
		"Authorization": {"Bearer abc"},
		"Content-Type":  {"application/json"},
		"Accept":        {"text/plain", "application/json"},
	}

	sanitized := SanitizeHeaders(headers)

	assert.Equal(t, maskedValue, sanitized["Api-Key"])
	assert.Equal(t, maskedValue, sanitized["Authorization"])
	assert.Equal(t, "application/json", sanitized["Content-Type"])
	assert.Equal(t, "text/plain, application/json", sanitized["Accept"])
	assert.Nil(t, SanitizeHeaders(nil))
}

func TestTruncateLongStrings(t *testing.T) {
	long := strings.Repeat("ABCDEFGHIJ", 20)

	tests := []struct {
		name     string
		input    interface{}
		expected interface{}
	}{
		{
			name:     "long string truncated",
			input:    long,
			expected: long[:50] + "...[100 chars truncated]..." + long[len(long)-50:],
		},
		{
			name:     "short string unchanged",
			input:    "a poem about cats",
			expected: "a poem about cats",
		},
		{
			name:     "nested map",
			input:    map[string]interface{}{"output": map[string]interface{}{"content": long}, "n": 1.0},
			expected: map[string]interface{}{"output": map[string]interface{}{"content": long[:50] + "...[100 chars truncated]..." + long[len(long)-50:]}, "n": 1.0},
		},
		{
			name:     "slice",
			input:    []interface{}{"x", long},
			expected: []interface{}{"x", long[:50] + "...[100 chars truncated]..." + long[len(long)-50:]},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateLongStrings(tt.input, 100))
		})
	}
}

func TestTruncateLongStrings_KeepsRunesWhole(t *testing.T) {
	long := strings.Repeat("é", 100) // 200 bytes

	got := TruncateLongStrings(long, 99).(string)

	assert.True(t, utf8.ValidString(got), "truncated string is not valid UTF-8: %q", got)
	assert.Equal(t, strings.Repeat("é", 24)+"...[102 chars truncated]..."+strings.Repeat("é", 25), got)
}
