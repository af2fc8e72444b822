package dates

import (
	"fmt"
	"regexp"
	"strings"
)

// InvalidFilterError reports a weekday filter token that does not match the
// filter grammar.
type InvalidFilterError struct {
	Token string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid weekday filter %q", e.Token)
}

var (
	weekdayRangeRe  = regexp.MustCompile(`^([1-7])-([1-7])$`)
	weekdaySingleRe = regexp.MustCompile(`^[1-7]$`)
)

// ParseWeekdayFilter parses a comma-separated weekday filter such as
// "1-3,5,7" into ISO weekday numbers (1 Monday .. 7 Sunday). An empty
// filter means the whole week. Ranges with from > to yield nothing.
// The result is de-duplicated and ascending.
func ParseWeekdayFilter(filter string) ([]int, error) {
	if filter == "" {
		return []int{1, 2, 3, 4, 5, 6, 7}, nil
	}

	seen := [8]bool{}
	for _, token := range strings.Split(filter, ",") {
		if m := weekdayRangeRe.FindStringSubmatch(token); m != nil {
			from := atoi(m[1])
			to := atoi(m[2])
			for day := from; day <= to; day++ {
				seen[day] = true
			}
		} else if weekdaySingleRe.MatchString(token) {
			seen[atoi(token)] = true
		} else {
			return nil, &InvalidFilterError{Token: token}
		}
	}

	var weekdays []int
	for day := 1; day <= 7; day++ {
		if seen[day] {
			weekdays = append(weekdays, day)
		}
	}
	return weekdays, nil
}
