package layout

import (
	"strconv"
	"time"

	"github.com/penwyp/go-release-viz/internal/core/model"
	"github.com/penwyp/go-release-viz/internal/core/release"
	"github.com/penwyp/go-release-viz/internal/core/timeline"
	"github.com/penwyp/go-release-viz/internal/util"
	"github.com/samber/lo"
)

// Result is one complete layout pass
type Result struct {
	Groups         []*Group
	ComputedWidth  float64
	ComputedHeight float64
	Collection     *release.Collection
}

// OverallWidth is the drawing width plus horizontal margins
func (r *Result) OverallWidth() float64 {
	return r.ComputedWidth + MarginLeft + MarginRight
}

// OverallHeight is the drawing height plus vertical margins
func (r *Result) OverallHeight() float64 {
	return r.ComputedHeight + MarginTop + MarginBottom
}

// Engine lays out a release collection for a given container size
type Engine struct {
	collection *release.Collection
	now        time.Time
	sizer      *Sizer

	width  float64
	height float64
	units  float64
}

// Layout builds the render groups of the collection for a container of the
// given size. It is a pure function of its arguments.
func Layout(collection *release.Collection, containerWidth, containerHeight float64, now time.Time) *Result {
	e := &Engine{
		collection: collection,
		now:        now,
		sizer:      SharedSizer(),
	}
	e.width = e.sizer.ComputedWidth(containerWidth)
	e.height = e.sizer.ComputedHeight(containerHeight)
	if n := len(collection.Timeline); n > 0 {
		e.units = e.width / float64(n)
	}

	groups := make([]*Group, 0, len(collection.Timeline)+2*collection.Len()+8)
	groups = append(groups, e.monthLines()...)
	groups = append(groups, e.todayMarker())
	groups = append(groups, e.yAxis()...)
	groups = append(groups, e.bars()...)
	groups = append(groups, e.legend()...)

	util.LogDebug("laid out release chart",
		util.F("groups", len(groups)),
		util.F("width", e.width),
		util.F("height", e.height))

	return &Result{
		Groups:         groups,
		ComputedWidth:  e.width,
		ComputedHeight: e.height,
		Collection:     collection,
	}
}

// x returns the horizontal position of a month. Months outside the timeline
// sit one slot past its end.
func (e *Engine) x(month timeline.MonthPoint) float64 {
	return float64(e.collection.Timeline.Position(month)) * e.units
}

func (e *Engine) barWidth(span timeline.Timeline) float64 {
	return e.x(span[len(span)-1]) - e.x(span[0])
}

func (e *Engine) monthLines() []*Group {
	return lo.Map(e.collection.Timeline, func(month timeline.MonthPoint, _ int) *Group {
		x := e.x(month)
		children := []Primitive{
			&Line{
				X1:     x,
				Y1:     e.height,
				X2:     x,
				Y2:     0,
				Class:  joinClasses(ClassMonthLine, ClassPartialOpaque),
				Dashed: !month.IsJanuary(),
			},
		}
		if month.IsJanuary() {
			children = append(children, &Text{
				X:       x - 18,
				Y:       e.height + 20,
				Content: strconv.Itoa(month.Year),
			})
		}
		return &Group{Role: RoleMonthLine, DX: MarginLeft, DY: lineOffsetY, Children: children}
	})
}

func (e *Engine) todayMarker() *Group {
	day := float64(e.now.Day())
	days := float64(util.DaysInMonth(e.now))
	x := e.x(timeline.MonthOf(e.now)) + e.units*(day/days)

	return &Group{
		Role: RoleToday,
		DX:   MarginLeft,
		DY:   lineOffsetY,
		Children: []Primitive{
			&Line{X1: x, Y1: e.height, X2: x, Y2: 0, Class: ClassTodayLine},
			&Text{X: x - 35, Y: 0, Content: util.FormatShortDate(e.now), Class: ClassTodayText},
		},
	}
}

func (e *Engine) yAxis() []*Group {
	return lo.Map(e.collection.Releases, func(r model.Release, i int) *Group {
		return &Group{
			Role: RoleYAxis,
			DX:   0,
			DY:   e.sizer.RowOffset(i),
			Children: []Primitive{
				&Rect{
					Width:  YAxisWidth,
					Height: BarHeight,
					X:      0,
					Y:      3,
					RX:     5,
					Class:  ClassForState(r.State(e.now)),
				},
				// text last so it draws over the block
				&Text{
					X:       BarHeight * 2 * .1,
					Y:       BarHeight * .65,
					Content: r.Version,
					Class:   ClassYAxisVersion,
				},
			},
		}
	})
}

func (e *Engine) bars() []*Group {
	return lo.Map(e.collection.Releases, func(r model.Release, i int) *Group {
		var children []Primitive
		if len(r.ActiveDuration) > 0 {
			children = append(children, &Rect{
				Width:  e.barWidth(r.ActiveDuration),
				Height: BarHeight,
				X:      e.x(r.ActiveDuration[0]),
				Class:  ClassActive,
			})
		}
		if len(r.LTSDuration) > 0 {
			children = append(children, &Rect{
				Width:  e.barWidth(r.LTSDuration),
				Height: BarHeight,
				X:      e.x(r.LTSDuration[0]),
				Class:  ClassLTS,
			})
		}

		state := r.State(e.now)
		full := r.FullDuration()
		if (state == model.StateFuture || state == model.StateUnsupported) && len(full) > 0 {
			children = append(children, &Rect{
				Width:  e.barWidth(full),
				Height: BarHeight / 3,
				X:      e.x(full[0]),
				Y:      (BarHeight / 3) * 2,
				Class:  joinClasses(ClassForState(state), ClassPartialOpaque),
			})
		}

		return &Group{Role: RoleBars, DX: MarginLeft, DY: e.sizer.RowOffset(i), Children: children}
	})
}

// legend places one swatch per distinct status, in order of first appearance.
// A status shared by several releases takes the class of the last of them.
func (e *Engine) legend() []*Group {
	statuses := e.collection.Statuses()
	classes := make(map[string]string, len(statuses))
	for _, r := range e.collection.Releases {
		classes[r.Status] = ClassForState(r.State(e.now))
	}

	y := e.height + MarginTop + 20
	step := (e.width - MarginLeft - MarginRight) / float64(max(len(statuses), 1))

	return lo.Map(statuses, func(status string, i int) *Group {
		return &Group{
			Role: RoleLegend,
			DX:   step*float64(i) + MarginLeft,
			DY:   y,
			Children: []Primitive{
				&Rect{Width: 10, Height: 10, X: 0, Y: 0, RX: 15, Class: classes[status]},
				&Text{X: 15, Y: 10, Content: status},
			},
		}
	})
}
