package dates

import (
	"fmt"
	"strings"
)

// FormatSeconds renders a second count as space-joined non-zero components,
// e.g. "1h 1m 6s". Zero renders as "0".
func FormatSeconds(seconds int64) string {
	secs := seconds % 60
	minutes := seconds / 60 % 60
	hours := seconds / 3600

	var parts []string
	if hours != 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes != 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs != 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " ")
}
