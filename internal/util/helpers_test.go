package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestISOTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, 5, 1, 15, 30, 45, 123456789, loc)

	require.Equal(t, "2024-05-01T12:30:45.123Z", ISOTimestamp(ts))
	require.Equal(t, "2024-05-01T12:30:45.000Z", ISOTimestamp(ts.Truncate(time.Second)))
}

func TestNow(t *testing.T) {
	_, err := time.Parse(time.RFC3339Nano, Now())
	require.NoError(t, err)
}

func TestTruncateRunes(t *testing.T) {
	require.Equal(t, "", TruncateRunes("abc", 0))
	require.Equal(t, "abc", TruncateRunes("abc", 5))
	require.Equal(t, "ab", TruncateRunes("abc", 2))
	require.Equal(t, "при", TruncateRunes("привет", 3))
}

func TestPreview(t *testing.T) {
	require.Equal(t, "short...", Preview("short", 100))
	require.Equal(t, "lon...", Preview("long text", 3))
}
