package layout

import (
	"os"

	"github.com/penwyp/go-release-viz/internal/util"
	"golang.org/x/term"
)

// Chart geometry
const (
	BaseWidth  = 460.0
	BaseHeight = 350.0

	MarginTop    = 30.0
	MarginRight  = 50.0
	MarginBottom = 60.0
	MarginLeft   = 80.0

	BarHeight  = 35.0
	BarGap     = 15.0
	RowStep    = 25.0
	YAxisWidth = 55.0

	lineOffsetY = 15.0
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

// Sizer converts container sizes into drawing-area sizes and measures text
type Sizer struct {
}

// SharedSizer returns the package sizer
func SharedSizer() *Sizer {
	return sharedSizer
}

// ComputedWidth is the drawing width left after the horizontal margins
func (s Sizer) ComputedWidth(containerWidth float64) float64 {
	if containerWidth <= 0 {
		containerWidth = BaseWidth
	}
	width := containerWidth - MarginLeft - MarginRight
	if width < 0 {
		return 0
	}
	return width
}

// ComputedHeight is the drawing height left after the vertical margins. The
// container never shrinks the chart below the base height.
// Taller containers grow the drawing area instead of pinning it at 260.
func (s Sizer) ComputedHeight(containerHeight float64) float64 {
	if containerHeight < BaseHeight {
		containerHeight = BaseHeight
	}
	return containerHeight - MarginTop - MarginBottom
}

// RowOffset is the vertical position of release row i
func (s Sizer) RowOffset(i int) float64 {
	n := float64(i + 1)
	return n*RowStep + n*BarGap
}

// TerminalSize returns the terminal columns and rows, falling back to 80x24
func (s Sizer) TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		width, height = 80, 24
	}

	util.LogDebugf("TerminalSize %dx%d", width, height)
	return width, height
}
