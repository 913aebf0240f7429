package services

import (
	"time"

	"github.com/fittrack-dev/fittrack/internal/validate"
)

// parseDate parses a YYYY-MM-DD string into midnight UTC.
func parseDate(value string) (time.Time, error) {
	return time.Parse(validate.DateLayout, value)
}

// today returns the current calendar date at midnight UTC.
func today() time.Time {
	return dateOf(time.Now().UTC())
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
