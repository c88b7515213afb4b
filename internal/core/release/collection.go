package release

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/model"
	"github.com/penwyp/go-release-viz/internal/core/timeline"
	"github.com/penwyp/go-release-viz/internal/data/parser"
	"github.com/penwyp/go-release-viz/internal/util"
	"github.com/samber/lo"
)

// DefaultPaddingMonths is the number of months shown before the first and after the last boundary
const DefaultPaddingMonths = 3

// Options controls how a collection is built
type Options struct {
	PaddingMonths int
	SortAscending bool           // oldest release on top when true
	Location      *time.Location // location used to read table dates; UTC when nil
}

// Collection is the sorted set of releases and the timeline shared by all of them
type Collection struct {
	Releases      []model.Release   `json:"releases"`
	Timeline      timeline.Timeline `json:"timeline"`
	PaddingMonths int               `json:"paddingMonths"`
	SortAscending bool              `json:"sortAscending"`
}

// Build parses raw table text and derives durations and the shared timeline.
//
// Display order and the timeline boundaries come from the same sort: releases
// are sorted by publish date ascending and reversed unless SortAscending is
// set. The timeline then runs from the publish date of the top release to the
// LTS end of the bottom one when ascending, and from the publish date of the
// bottom release to the LTS end of the top one otherwise.
func Build(raw string, opts Options) (*Collection, error) {
	releases, err := parser.ParseTable(raw)
	if err != nil {
		return nil, err
	}
	return FromReleases(releases, opts)
}

// FromReleases builds a collection from already parsed rows
func FromReleases(releases []model.Release, opts Options) (*Collection, error) {
	if len(releases) == 0 {
		return nil, &model.ParseError{Reason: "table has no release rows"}
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.PaddingMonths < 0 {
		return nil, fmt.Errorf("padding months must not be negative, got %d", opts.PaddingMonths)
	}

	sorted := make([]model.Release, len(releases))
	copy(sorted, releases)
	for i := range sorted {
		if err := sorted[i].ResolveDates(opts.Location); err != nil {
			return nil, err
		}
	}

	sortReleases(sorted, opts.SortAscending)

	for i := range sorted {
		if err := sorted[i].ComputeDurations(); err != nil {
			return nil, err
		}
	}

	months, err := buildTimeline(sorted, opts)
	if err != nil {
		return nil, err
	}

	util.LogDebug("built release collection",
		util.F("releases", len(sorted)),
		util.F("timeline", fmt.Sprintf("%s..%s", months[0], months[len(months)-1])))

	return &Collection{
		Releases:      sorted,
		Timeline:      months,
		PaddingMonths: opts.PaddingMonths,
		SortAscending: opts.SortAscending,
	}, nil
}

// sortReleases orders by publish date ascending, unreleased versions last, and
// reverses the result for descending display. Equal dates keep table order
// before the reversal.
func sortReleases(releases []model.Release, ascending bool) {
	slices.SortStableFunc(releases, func(a, b model.Release) int {
		switch {
		case a.ReleasedAt.IsZero() && b.ReleasedAt.IsZero():
			return 0
		case a.ReleasedAt.IsZero():
			return 1
		case b.ReleasedAt.IsZero():
			return -1
		default:
			return a.ReleasedAt.Compare(b.ReleasedAt)
		}
	})
	if !ascending {
		slices.Reverse(releases)
	}
}

// Boundaries returns the releases whose dates open and close the timeline
func Boundaries(sorted []model.Release, ascending bool) (first, last *model.Release) {
	if ascending {
		return &sorted[0], &sorted[len(sorted)-1]
	}
	return &sorted[len(sorted)-1], &sorted[0]
}

func buildTimeline(sorted []model.Release, opts Options) (timeline.Timeline, error) {
	first, last := Boundaries(sorted, opts.SortAscending)

	start := first.ReleasedAt
	if start.IsZero() {
		start = first.ActiveEndsAt
	}
	end := last.LTSEndsAt

	months, err := timeline.MonthsBetween(start, end, opts.PaddingMonths)
	if errors.Is(err, timeline.ErrInverted) {
		return nil, &model.TimelineInversionError{
			Version: first.Version,
			From:    timeline.MonthOf(start),
			To:      timeline.MonthOf(end),
		}
	}
	return months, err
}

// Statuses returns the distinct status labels in order of first appearance
func (c *Collection) Statuses() []string {
	return lo.Uniq(lo.Map(c.Releases, func(r model.Release, _ int) string {
		return r.Status
	}))
}

// Len returns the number of releases
func (c *Collection) Len() int {
	return len(c.Releases)
}
