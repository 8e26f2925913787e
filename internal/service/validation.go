package service

import (
	"time"
)

const (
	// maxFieldLength bounds every user-supplied text field.
	maxFieldLength = 128

	// dateLayout is the wire format of scheduled dates.
	dateLayout = "2006-01-02"

	// maxScheduleAheadYears bounds how far into the future a note may be
	// scheduled.
	maxScheduleAheadYears = 10
)

// fieldsPresent reports whether every given field is non-empty.
func fieldsPresent(fields ...string) bool {
	for _, field := range fields {
		if field == "" {
			return false
		}
	}
	return true
}

// fieldsWithinLimit reports whether every given field fits maxFieldLength.
func fieldsWithinLimit(fields ...string) bool {
	for _, field := range fields {
		if len(field) > maxFieldLength {
			return false
		}
	}
	return true
}

// today truncates now to its calendar date in UTC.
func today(now time.Time) time.Time {
	year, month, day := now.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// parseScheduledDate parses raw as a YYYY-MM-DD date and validates it
// against the allowed scheduling window: not before today and at most ten
// years ahead.
func parseScheduledDate(raw string, now time.Time) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	startOfToday := today(now)
	if date.Before(startOfToday) {
		return time.Time{}, ErrDateOutOfRange
	}
	if date.After(startOfToday.AddDate(maxScheduleAheadYears, 0, 0)) {
		return time.Time{}, ErrDateOutOfRange
	}

	return date, nil
}

// parseQueryDate parses raw as a YYYY-MM-DD date without the scheduling
// window check: querying past dates is allowed.
func parseQueryDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
