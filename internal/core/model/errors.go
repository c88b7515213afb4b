package model

import (
	"errors"
	"fmt"

	"github.com/penwyp/go-release-viz/internal/core/timeline"
)

var (
	ErrParse             = errors.New("malformed release table")
	ErrDate              = errors.New("invalid release date")
	ErrTimelineInversion = errors.New("timeline inversion")
	ErrEmptyDate         = errors.New("date is empty")
)

// ParseError reports a table that cannot be turned into releases.
// Line is 1-based in the raw text; 0 means the table as a whole.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrParse, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrParse, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// DateError reports a date cell that cannot be parsed
type DateError struct {
	Version string
	Field   Field
	Value   string
	Err     error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("release %s: %s %q: %v", e.Version, e.Field, e.Value, e.Err)
}

func (e *DateError) Is(target error) bool {
	return target == ErrDate
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// TimelineInversionError reports a span whose start comes after its end
type TimelineInversionError struct {
	Version string
	From    timeline.MonthPoint
	To      timeline.MonthPoint
}

func (e *TimelineInversionError) Error() string {
	if e.Version == "" {
		return fmt.Sprintf("%s: %s is after %s", ErrTimelineInversion, e.From, e.To)
	}
	return fmt.Sprintf("%s: release %s: %s is after %s", ErrTimelineInversion, e.Version, e.From, e.To)
}

func (e *TimelineInversionError) Is(target error) bool {
	return target == ErrTimelineInversion
}

func (e *TimelineInversionError) Unwrap() error {
	return timeline.ErrInverted
}
