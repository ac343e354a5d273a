// Package date formats and parses the timestamps stored in asset files.
//
// Timestamps are stored in local time with a second granularity.
package date

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the format used to write timestamps.
const Layout = "2006-01-02 15:04:05"

// DayLayout is the format used to write a date only.
const DayLayout = "2006-01-02"

// read layouts are more permissive (allow single-digit month/day) and are
// tried in order.
var readLayouts = []string{
	"2006-1-2 15:04:05",
	"2006-1-2T15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
}

// Format formats t in the standard Layout, in local time as Parse reads it.
// An instant in the repeated hour of a daylight saving change may read back
// an hour off.
func Format(t time.Time) string { return t.Local().Format(Layout) }

// Parse parses a timestamp in local time. It accepts the standard Layout and
// falls back to a date only, like "2025-7-1".
func Parse(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	for _, layout := range readLayouts {
		if t, err := time.ParseInLocation(layout, str, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q want format %q or %q", str, Layout, DayLayout)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) time.Time {
	t, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// ParseOr is like Parse but returns 'def' when str cannot be parsed.
func ParseOr(str string, def time.Time) time.Time {
	t, err := Parse(str)
	if err != nil {
		return def
	}
	return t
}

// Truncate drops everything below the second, including the monotonic clock
// reading, so that t compares equal to its stored version.
func Truncate(t time.Time) time.Time { return t.Round(0).Truncate(time.Second) }
