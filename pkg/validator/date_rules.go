package validator

import (
	"strings"
	"time"
)

// dateLayouts are tried in order by ToDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// IsDate reports whether str parses as a date in one of the supported layouts.
func IsDate(str string) bool {
	_, ok := ToDate(str)
	return ok
}

// IsAfter reports whether str is a date after the reference. Without a
// reference the current time is used.
func IsAfter(str string, reference ...time.Time) bool {
	t, ok := ToDate(str)
	if !ok {
		return false
	}
	ref := time.Now()
	if len(reference) > 0 {
		ref = reference[0]
	}
	return t.After(ref)
}

// IsBefore reports whether str is a date before the reference. Without a
// reference the current time is used.
func IsBefore(str string, reference ...time.Time) bool {
	t, ok := ToDate(str)
	if !ok {
		return false
	}
	ref := time.Now()
	if len(reference) > 0 {
		ref = reference[0]
	}
	return t.Before(ref)
}

// dateArg accepts a time.Time, *time.Time or a date string.
func dateArg(args []any, i int) (time.Time, bool) {
	v, ok := argAt(args, i)
	if !ok {
		return time.Time{}, false
	}
	switch d := v.(type) {
	case time.Time:
		return d, true
	case *time.Time:
		if d != nil {
			return *d, true
		}
		return time.Time{}, false
	}
	return ToDate(strings.TrimSpace(ToString(v)))
}
