package display

import (
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-release-viz/internal/presentation/layout"
	"github.com/penwyp/go-release-viz/internal/util"
)

// Terminal cells are roughly twice as tall as they are wide
const (
	PixelsPerColumn = 8.0
	PixelsPerRow    = 16.0
)

type cell struct {
	ch    rune
	color string
}

// Canvas rasterizes a layout result onto a grid of terminal cells. Later
// primitives overwrite earlier ones, so the layout's z-order is kept.
type Canvas struct {
	cols, rows int
	sx, sy     float64
	cells      [][]cell

	// translation of the group being drawn
	dx, dy float64
}

// NewCanvas creates a canvas of the given size in cells, mapping
// PixelsPerColumn x PixelsPerRow chart pixels onto each cell.
func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	c := &Canvas{cols: cols, rows: rows, sx: PixelsPerColumn, sy: PixelsPerRow}
	c.cells = make([][]cell, rows)
	for r := range c.cells {
		c.cells[r] = make([]cell, cols)
	}
	return c
}

// Draw rasterizes every group of the result
func (c *Canvas) Draw(result *layout.Result) error {
	for _, group := range result.Groups {
		c.dx, c.dy = group.DX, group.DY
		if err := group.Walk(c); err != nil {
			return err
		}
	}
	c.dx, c.dy = 0, 0
	return nil
}

func (c *Canvas) VisitRect(r *layout.Rect) error {
	color := classColor(r.Class)
	left, right := c.colSpan(r.X, r.Width)
	top, bottom := c.rowSpan(r.Y, r.Height)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			c.set(row, col, '█', color)
		}
	}
	return nil
}

func (c *Canvas) VisitLine(l *layout.Line) error {
	ch := '│'
	if l.Dashed {
		ch = '┊'
	}
	color := classColor(l.Class)

	if l.X1 == l.X2 {
		col := c.col(l.X1)
		top, bottom := c.rowSpan(math.Min(l.Y1, l.Y2), math.Abs(l.Y1-l.Y2))
		for row := top; row <= bottom; row++ {
			c.set(row, col, ch, color)
		}
		return nil
	}

	// the chart only draws vertical lines; anything else is plotted as a horizontal run
	left, right := c.colSpan(math.Min(l.X1, l.X2), math.Abs(l.X1-l.X2))
	row := c.row(l.Y1)
	for col := left; col <= right; col++ {
		c.set(row, col, '─', color)
	}
	return nil
}

func (c *Canvas) VisitText(t *layout.Text) error {
	row := c.row(t.Y)
	col := c.col(t.X)
	color := classColor(t.Class)
	for _, ch := range t.Content {
		c.set(row, col, ch, color)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return nil
}

// Render writes the canvas as lines of text, with ANSI colors when color is set
func (c *Canvas) Render(w io.Writer, color bool) error {
	var b strings.Builder
	for _, line := range c.cells {
		for col := 0; col < len(line); col++ {
			cl := line[col]
			if cl.ch == 0 {
				b.WriteByte(' ')
				continue
			}
			text := string(cl.ch)
			if color {
				text = util.Colorize(text, cl.color)
			}
			b.WriteString(text)
			// wide runes occupy the following cell
			col += max(runewidth.RuneWidth(cl.ch), 1) - 1
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the canvas without colors
func (c *Canvas) String() string {
	var b strings.Builder
	_ = c.Render(&b, false)
	return b.String()
}

func (c *Canvas) col(x float64) int {
	return int(math.Floor((x + c.dx) / c.sx))
}

func (c *Canvas) row(y float64) int {
	return int(math.Floor((y + c.dy) / c.sy))
}

// colSpan covers at least one cell
func (c *Canvas) colSpan(x, width float64) (int, int) {
	left := c.col(x)
	right := int(math.Ceil((x+c.dx+width)/c.sx)) - 1
	return left, max(right, left)
}

func (c *Canvas) rowSpan(y, height float64) (int, int) {
	top := c.row(y)
	bottom := int(math.Ceil((y+c.dy+height)/c.sy)) - 1
	return top, max(bottom, top)
}

func (c *Canvas) set(row, col int, ch rune, color string) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	c.cells[row][col] = cell{ch: ch, color: color}
}

// classColor picks the terminal color of the first recognized style class
func classColor(class string) string {
	for _, name := range strings.Fields(class) {
		switch name {
		case layout.ClassActive:
			return util.ColorGreen
		case layout.ClassLTS:
			return util.ColorYellow
		case layout.ClassUnsupported:
			return util.ColorRed
		case layout.ClassFuture:
			return util.ColorMagenta
		case layout.ClassMonthLine, layout.ClassTodayText:
			return util.ColorGray
		case layout.ClassTodayLine, layout.ClassYAxisVersion:
			return util.ColorBold
		}
	}
	return ""
}
