package util

import (
	"fmt"
	"time"
)

// FormatShortDate formats a date as YYYY-M-D without zero padding
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// FormatCount formats a count with its noun, pluralizing when needed
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// DaysInMonth returns the number of days in the month containing t
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
