package dates

import (
	"fmt"
	"regexp"
	"time"
)

// InvalidTimeError reports a time string in none of the supported formats.
type InvalidTimeError struct {
	Input string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("unsupported time string %q", e.Input)
}

var (
	clockOnlyRe = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)
	fullDateRe  = regexp.MustCompile(`^(\d{4})[.\-/](\d{2})[.\-/](\d{2}) (\d{2}):(\d{2})(?::(\d{2}))?$`)
)

// ParseTimeString resolves a user-supplied time string to an instant.
//
// Two forms are supported:
//
//	"HH:MM" or "HH:MM:SS"      a time within the past 24 hours; if it
//	                           would land in the future it refers to
//	                           yesterday
//	"YYYY.MM.DD HH:MM[:SS]"    a full date and time ('.', '-' or '/' as
//	                           the date separator)
//
// now anchors the clock-only form.
func ParseTimeString(now time.Time, s string) (time.Time, error) {
	if m := clockOnlyRe.FindStringSubmatch(s); m != nil {
		sec := 0
		if m[3] != "" {
			sec = atoi(m[3])
		}
		y, mo, d := now.Date()
		t := time.Date(y, mo, d, atoi(m[1]), atoi(m[2]), sec, 0, now.Location())
		if t.After(now) {
			t = t.AddDate(0, 0, -1)
		}
		return t, nil
	}

	if m := fullDateRe.FindStringSubmatch(s); m != nil {
		sec := 0
		if m[6] != "" {
			sec = atoi(m[6])
		}
		return time.Date(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]),
			atoi(m[4]), atoi(m[5]), sec, 0, now.Location()), nil
	}

	return time.Time{}, &InvalidTimeError{Input: s}
}
