package timeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
)

// ErrInverted is returned when a span starts after it ends
var ErrInverted = errors.New("timeline starts after it ends")

// Timeline is a gap-free, strictly increasing run of months
type Timeline []MonthPoint

// Span enumerates every month from `from` to `to` inclusive after widening
// both ends by padding months.
func Span(from, to MonthPoint, padding int) (Timeline, error) {
	start := from.AddMonths(-padding)
	end := to.AddMonths(padding)
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInverted, start, end)
	}

	months := make(Timeline, 0, end.index()-start.index()+1)
	for current := start; !current.After(end); current = current.AddMonths(1) {
		months = append(months, current)
	}
	return months, nil
}

// MonthsBetween enumerates the months between two dates, padded on both ends.
// Only the month and year of each date matter.
func MonthsBetween(from, to time.Time, padding int) (Timeline, error) {
	return Span(MonthOf(from), MonthOf(to), padding)
}

// IndexOf returns the position of the month, or -1 when it is not on the timeline
func (t Timeline) IndexOf(month MonthPoint) int {
	return lo.IndexOf(t, month)
}

// Position returns the slot of the month used for horizontal placement.
// Months missing from the timeline are placed one past the last slot.
func (t Timeline) Position(month MonthPoint) int {
	if i := t.IndexOf(month); i >= 0 {
		return i
	}
	return len(t)
}

// First returns the earliest month; ok is false for an empty timeline
func (t Timeline) First() (MonthPoint, bool) {
	if len(t) == 0 {
		return MonthPoint{}, false
	}
	return t[0], true
}

// Last returns the latest month; ok is false for an empty timeline
func (t Timeline) Last() (MonthPoint, bool) {
	if len(t) == 0 {
		return MonthPoint{}, false
	}
	return t[len(t)-1], true
}

// Concat joins two timelines without re-checking order
func (t Timeline) Concat(other Timeline) Timeline {
	joined := make(Timeline, 0, len(t)+len(other))
	joined = append(joined, t...)
	return append(joined, other...)
}

// IsContiguous reports whether every month directly follows the previous one
func (t Timeline) IsContiguous() bool {
	for i := 1; i < len(t); i++ {
		if t[i-1].AddMonths(1) != t[i] {
			return false
		}
	}
	return true
}
