package util

import (
	"time"
	"unicode/utf8"
)

// ISOTimestamp formats t in UTC with millisecond precision,
// e.g. 2024-05-01T12:30:45.123Z.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// Now is ISOTimestamp(time.Now()).
func Now() string {
	return ISOTimestamp(time.Now())
}

// TruncateRunes cuts s to at most n runes without splitting a character.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n])
}

// Preview shortens s to n runes for log output and always appends "...".
func Preview(s string, n int) string {
	return TruncateRunes(s, n) + "..."
}
