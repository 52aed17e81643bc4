package utils

import (
	"fmt"
	"time"

	"github.com/ryancast1/reservations/internal/constants"
)

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats a time as a date string (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// FormatHuman formats a date string for display, e.g. "Mon, January 5, 2025".
// Invalid input is returned unchanged.
func FormatHuman(dateStr string) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(constants.HumanDateFormat)
}

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
func Today() string {
	return FormatDate(time.Now())
}

// Nights returns the number of nights between a check-in and check-out date.
// Both dates must be in the standard format.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return 0, err
	}
	return int(out.Sub(in).Hours() / 24), nil
}

// AddDays returns the date string n days after the given date.
func AddDays(dateStr string, n int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// MaxDate returns the lexicographically later of two date strings. For dates
// in the standard format this is also the chronologically later one.
func MaxDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}
