// Package utils provides utility functions for the application.
package utils

import (
	"time"
)

// DateLayout is the calendar date format accepted and returned by the API
const DateLayout = "2006-01-02"

// UTCNow returns the current time in UTC at microsecond precision, the
// resolution of a postgres timestamp, so stored values read back unchanged
func UTCNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC of that day
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
