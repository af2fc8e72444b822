package dates

import (
	"fmt"
	"regexp"
	"time"
)

// TimeOfDay is a clock time expressed as seconds since midnight. The
// configured deadline is a TimeOfDay: the last second of a commitment day,
// not the first second of the next one.
type TimeOfDay int

var timeOfDayRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayRe.FindStringSubmatch(s)
	if m == nil {
		return 0, &InvalidTimeError{Input: s}
	}
	h := atoi(m[1])
	min := atoi(m[2])
	sec := 0
	if m[3] != "" {
		sec = atoi(m[3])
	}
	if h > 23 || min > 59 || sec > 59 {
		return 0, &InvalidTimeError{Input: s}
	}
	return TimeOfDay(h*3600 + min*60 + sec), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

// BeforeNoon reports whether the deadline falls in the first half of the
// calendar day. A sub-noon deadline means a commitment day ends early the
// next morning, so it is labeled by the date it mostly covers.
func (t TimeOfDay) BeforeNoon() bool { return t < 12*3600 }

// secondsIntoDay returns the wall-clock time of tm as seconds since midnight.
func secondsIntoDay(tm time.Time) int {
	h, m, s := tm.Clock()
	return h*3600 + m*60 + s
}

// CommitmentDay maps an instant to the logical commitment day it belongs
// to. The day boundary is the deadline instant, so the commitment day is
// the interval (previous deadline, this deadline].
func CommitmentDay(deadline TimeOfDay, tm time.Time) Date {
	day := DateOf(tm)
	if deadline.BeforeNoon() {
		day = day.Add(-1)
	}
	if secondsIntoDay(tm) > int(deadline) {
		day = day.Add(1)
	}
	return day
}

// DayEnd returns the instant at which the commitment day containing tm
// ends: the deadline on tm's calendar date, rolled forward one day when tm
// is already past it.
func DayEnd(deadline TimeOfDay, tm time.Time) time.Time {
	end := DateOf(tm).At(deadline, tm.Location())
	if secondsIntoDay(tm) > int(deadline) {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// GoalStart returns the instant a goal starts accumulating its due hours:
// the deadline on the creation date, shifted one day back when the goal
// was created before that day's deadline.
func GoalStart(deadline TimeOfDay, created time.Time) time.Time {
	start := DateOf(created).At(deadline, created.Location())
	if secondsIntoDay(created) < int(deadline) {
		start = start.AddDate(0, 0, -1)
	}
	return start
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
