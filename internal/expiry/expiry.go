// Package expiry holds the date handling for item lifetimes: formatting,
// resolving an expiry date from form input, and bucketing items by urgency.
package expiry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date format used everywhere: zero-padded
// YYYY-MM-DD, so string comparison orders dates chronologically.
const DateLayout = "2006-01-02"

var (
	// ErrMissingInput is returned when neither an explicit expiry date nor a
	// days-to-store count was provided.
	ErrMissingInput = errors.New("either an expiry date or a days-to-store count is required")

	// ErrInvalidDays is returned when the days-to-store count is not a whole
	// number of at least 1.
	ErrInvalidDays = errors.New("days to store must be a whole number of at least 1")
)

// FormatDate formats a timestamp as YYYY-MM-DD using local calendar fields.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Resolve computes an item's expiry date from form input. An explicit date
// takes precedence over a days-to-store count; the count must parse as an
// integer >= 1 and is added to now as calendar days.
func Resolve(explicitDate, daysToStore string, now time.Time) (time.Time, error) {
	if explicitDate != "" {
		t, err := time.ParseInLocation(DateLayout, explicitDate, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing expiry date: %w", err)
		}
		return t, nil
	}

	if daysToStore != "" {
		days, err := strconv.Atoi(strings.TrimSpace(daysToStore))
		if err != nil || days < 1 {
			return time.Time{}, ErrInvalidDays
		}
		return now.AddDate(0, 0, days), nil
	}

	return time.Time{}, ErrMissingInput
}
