// Package dateutil resolves report dates and file-name date stamps.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate indicates a date override that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// ISODate is the accepted format for date overrides.
const ISODate = "2006-01-02"

// Stamp formats a date for file names: YYYYMMDD.
func Stamp(t time.Time) string {
	return t.Format("20060102")
}

// ReportDate returns the default report date: yesterday relative to
// now. Scores sheets cover the previous day's games.
func ReportDate(now time.Time) time.Time {
	return now.AddDate(0, 0, -1)
}

// ParseOverride parses a --date flag value. An empty value yields the
// default report date.
func ParseOverride(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return ReportDate(now), nil
	}
	t, err := time.ParseInLocation(ISODate, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, value)
	}
	return t, nil
}
