package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maskedValue = "***MASKED***"

var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"api-key":       true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// SanitizeHeaders flattens headers for logging and masks credentials
func SanitizeHeaders(headers map[string][]string) map[string]string {
	if headers == nil {
		return nil
	}

	sanitized := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			sanitized[key] = maskedValue
			continue
		}
		sanitized[key] = strings.Join(values, ", ")
	}
	return sanitized
}

// TruncateLongStrings shortens long string values anywhere in decoded JSON
// so generated essays and poems do not flood the log.
func TruncateLongStrings(data interface{}, limit int) interface{} {
	switch v := data.(type) {
	case string:
		return truncateString(v, limit)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, value := range v {
			out[key] = TruncateLongStrings(value, limit)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, value := range v {
			out[i] = TruncateLongStrings(value, limit)
		}
		return out
	default:
		return data
	}
}

func truncateString(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	head := limit / 2
	tail := len(s) - (limit - head)
	// keep both cuts on rune boundaries
	for head > 0 && !utf8.RuneStart(s[head]) {
		head--
	}
	for tail < len(s) && !utf8.RuneStart(s[tail]) {
		tail++
	}
	return fmt.Sprintf("%s...[%d chars truncated]...%s", s[:head], tail-head, s[tail:])
}
