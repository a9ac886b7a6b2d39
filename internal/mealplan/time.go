package mealplan

import (
	"errors"
	"fmt"
	"time"

	"mealplan-mcp/internal/paths"
)

// ErrInvalidDate reports a range bound that is not a YYYY-MM-DD
// calendar day. Tool handlers surface it as a validation error rather
// than an internal failure.
var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

// ParseDay parses a YYYY-MM-DD calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(paths.DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseRange parses both bounds of a date range. The bounds are
// validated independently; an inverted range is not an error here —
// queries treat it as empty.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	startDay, err := ParseDay(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDay, err := ParseDay(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startDay, endDay, nil
}
