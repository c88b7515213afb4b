package model

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/penwyp/go-release-viz/internal/core/timeline"
)

// Release is one row of the release table together with the derived lifecycle data
type Release struct {
	Version    string `json:"version"`
	Status     string `json:"status"`
	Released   string `json:"released"`
	ActiveEnds string `json:"activeEnds"`
	LTSEnds    string `json:"ltsEnds"`

	ActiveDuration timeline.Timeline `json:"activeDuration"`
	LTSDuration    timeline.Timeline `json:"ltsDuration"`

	ReleasedAt   time.Time `json:"-"` // zero for unreleased versions
	ActiveEndsAt time.Time `json:"-"`
	LTSEndsAt    time.Time `json:"-"`
}

// Get returns the raw value of a table column
func (r *Release) Get(field Field) string {
	switch field {
	case FieldVersion:
		return r.Version
	case FieldStatus:
		return r.Status
	case FieldReleased:
		return r.Released
	case FieldActiveEnds:
		return r.ActiveEnds
	case FieldLTSEnds:
		return r.LTSEnds
	default:
		return ""
	}
}

// Set assigns the raw value of a table column; unknown fields are ignored
func (r *Release) Set(field Field, value string) {
	switch field {
	case FieldVersion:
		r.Version = value
	case FieldStatus:
		r.Status = value
	case FieldReleased:
		r.Released = value
	case FieldActiveEnds:
		r.ActiveEnds = value
	case FieldLTSEnds:
		r.LTSEnds = value
	}
}

// IsUnreleased reports whether the release has no publish date yet
func (r *Release) IsUnreleased() bool {
	return strings.TrimSpace(r.Released) == ""
}

// ResolveDates parses the three date columns. Released may be empty; the
// other two are required.
func (r *Release) ResolveDates(loc *time.Location) error {
	var err error
	r.ReleasedAt = time.Time{}
	if !r.IsUnreleased() {
		if r.ReleasedAt, err = ParseDate(r.Version, FieldReleased, r.Released, loc); err != nil {
			return err
		}
	}
	if r.ActiveEndsAt, err = ParseDate(r.Version, FieldActiveEnds, r.ActiveEnds, loc); err != nil {
		return err
	}
	if r.LTSEndsAt, err = ParseDate(r.Version, FieldLTSEnds, r.LTSEnds, loc); err != nil {
		return err
	}
	return nil
}

// ComputeDurations derives the active and LTS month spans from resolved dates.
// Unreleased versions get an empty active span.
func (r *Release) ComputeDurations() error {
	r.ActiveDuration = nil
	if !r.ReleasedAt.IsZero() {
		active, err := r.span(r.ReleasedAt, r.ActiveEndsAt)
		if err != nil {
			return err
		}
		r.ActiveDuration = active
	}

	lts, err := r.span(r.ActiveEndsAt, r.LTSEndsAt)
	if err != nil {
		return err
	}
	r.LTSDuration = lts
	return nil
}

func (r *Release) span(from, to time.Time) (timeline.Timeline, error) {
	months, err := timeline.MonthsBetween(from, to, 0)
	if errors.Is(err, timeline.ErrInverted) {
		return nil, &TimelineInversionError{
			Version: r.Version,
			From:    timeline.MonthOf(from),
			To:      timeline.MonthOf(to),
		}
	}
	return months, err
}

// FullDuration is the active span followed by the LTS span
func (r *Release) FullDuration() timeline.Timeline {
	return r.ActiveDuration.Concat(r.LTSDuration)
}

// State classifies the release at now. The checks run in a fixed order so
// exactly one state applies: future, then unsupported, then active, then lts.
func (r *Release) State(now time.Time) LifecycleState {
	switch {
	case r.ReleasedAt.IsZero() || r.ReleasedAt.After(now):
		return StateFuture
	case !r.LTSEndsAt.After(now):
		return StateUnsupported
	case !r.ActiveEndsAt.Before(now):
		return StateActive
	default:
		return StateLTS
	}
}

func (r *Release) IsFuture(now time.Time) bool {
	return r.State(now) == StateFuture
}

func (r *Release) IsUnsupported(now time.Time) bool {
	return r.State(now) == StateUnsupported
}

func (r *Release) IsActive(now time.Time) bool {
	return r.State(now) == StateActive
}

func (r *Release) IsLTS(now time.Time) bool {
	return r.State(now) == StateLTS
}

// ParseDate parses a date cell leniently in loc, reporting failures as *DateError
func ParseDate(version string, field Field, value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &DateError{Version: version, Field: field, Value: value, Err: ErrEmptyDate}
	}
	if loc == nil {
		loc = time.UTC
	}

	parsed, err := dateparse.ParseIn(value, loc)
	if err != nil {
		return time.Time{}, &DateError{Version: version, Field: field, Value: value, Err: err}
	}
	return parsed, nil
}
