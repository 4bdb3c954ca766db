package utils

import (
	"strings"
	"time"
)

// NormalizeDate normalizes a user-supplied date string to "YYYY-MM-DD".
//
// LLM agents frequently pass full ISO datetimes (with a T separator and an
// optional Z suffix) where the API expects a plain date. This helper truncates
// such values to their date part and validates plain dates. Values that cannot
// be parsed are returned unchanged so the API can produce its own error.
func NormalizeDate(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return value
	}

	if strings.Contains(s, "T") {
		if t, err := time.Parse(time.RFC3339, strings.Replace(s, "Z", "+00:00", 1)); err == nil {
			return t.Format("2006-01-02")
		}
		if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
			return t.Format("2006-01-02")
		}
		return value
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	return value
}
