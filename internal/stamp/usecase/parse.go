package usecase

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const calendarLayout = "2006-01-02"

var errInvalidDate = errors.New("not a calendar date")

// parseDate resolves raw into midnight UTC of a calendar date.
//
// A value that parses as a signed 64-bit integer is interpreted as Unix
// seconds and reformatted to its UTC calendar day before the strict date
// parse, so timestamps always lose their time-of-day component.
func parseDate(raw string) (time.Time, error) {
	if ts, err := strconv.ParseInt(raw, 10, 64); err == nil {
		raw = time.Unix(ts, 0).UTC().Format(calendarLayout)
	}

	return parseCalendarDate(raw)
}

// parseCalendarDate parses a strict YYYY-MM-DD string: exactly three
// dash-separated all-digit fields, a four-digit year, and a 1-2 digit month
// and day that form a real date (unpadded single digits are accepted).
func parseCalendarDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, errInvalidDate
	}

	year, err := parseDigits(parts[0], 4, 4)
	if err != nil {
		return time.Time{}, err
	}
	month, err := parseDigits(parts[1], 1, 2)
	if err != nil {
		return time.Time{}, err
	}
	day, err := parseDigits(parts[2], 1, 2)
	if err != nil {
		return time.Time{}, err
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range values (2016-02-30 becomes March 1);
	// the round-trip comparison rejects them instead.
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, errInvalidDate
	}

	return date, nil
}

func parseDigits(s string, minLen, maxLen int) (int, error) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, errInvalidDate
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errInvalidDate
		}
	}

	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidDate
	}

	return value, nil
}
