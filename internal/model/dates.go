package model

import "time"

// DateLayout is the ISO calendar-date layout used for all stored dates.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO date string. Empty strings are invalid.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders t in the stored ISO layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the signed number of calendar days from a to b.
// Both values are expected at midnight UTC, which is what ParseDate yields.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
