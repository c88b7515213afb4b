package layout

import (
	"strings"

	"github.com/penwyp/go-release-viz/internal/core/model"
)

// Style classes attached to primitives
const (
	ClassMonthLine     = "rv-month-line"
	ClassTodayLine     = "rv-today-line"
	ClassTodayText     = "rv-today-text"
	ClassActive        = "rv-active"
	ClassLTS           = "rv-lts"
	ClassUnsupported   = "rv-unsupported"
	ClassFuture        = "rv-future"
	ClassPartialOpaque = "rv-partial-opaque"
	ClassYAxisVersion  = "rv-y-axis-version"
)

// ClassForState returns the fill class of a lifecycle state
func ClassForState(state model.LifecycleState) string {
	switch state {
	case model.StateFuture:
		return ClassFuture
	case model.StateUnsupported:
		return ClassUnsupported
	case model.StateActive:
		return ClassActive
	default:
		return ClassLTS
	}
}

func joinClasses(classes ...string) string {
	return strings.Join(classes, " ")
}
