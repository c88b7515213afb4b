package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-release-viz/internal/util"
)

// TableFormatter draws release rows as a box table
type TableFormatter struct {
	headers  []string
	maxWidth int
	color    bool
}

// NewTableFormatter creates a table formatter. Cells wider than maxWidth
// display cells are truncated; maxWidth <= 0 disables truncation.
func NewTableFormatter(maxWidth int, color bool) *TableFormatter {
	return &TableFormatter{
		headers:  rowHeaders,
		maxWidth: maxWidth,
		color:    color,
	}
}

func (f *TableFormatter) Format(w io.Writer, rows []Row) error {
	widths := f.calculateColumnWidths(rows)

	var b strings.Builder
	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, f.headers, widths, "")
	f.writeBorder(&b, widths, "middle")
	for _, row := range rows {
		f.writeRow(&b, row.values(), widths, row.State)
	}
	f.writeBorder(&b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

// calculateColumnWidths determines the display width of each column
func (f *TableFormatter) calculateColumnWidths(rows []Row) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	for _, row := range rows {
		for i, value := range row.values() {
			if width := util.GetDisplayWidth(f.fit(value)); width > widths[i] {
				widths[i] = width
			}
		}
	}
	return widths
}

func (f *TableFormatter) fit(value string) string {
	if f.maxWidth <= 0 {
		return value
	}
	return util.TruncateToWidth(value, f.maxWidth)
}

// writeBorder writes table borders (top, middle, bottom)
func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

// writeRow writes one row; the state column is colored when enabled
func (f *TableFormatter) writeRow(b *strings.Builder, values []string, widths []int, state string) {
	b.WriteString("│")
	last := len(values) - 1
	for i, value := range values {
		cell := util.PadToWidth(f.fit(value), widths[i], true)
		if f.color && state != "" && i == last {
			cell = util.Colorize(cell, stateColor(state))
		}
		b.WriteString(fmt.Sprintf(" %s │", cell))
	}
	b.WriteString("\n")
}

func stateColor(state string) string {
	switch state {
	case "active":
		return util.ColorGreen
	case "lts":
		return util.ColorYellow
	case "unsupported":
		return util.ColorRed
	case "future":
		return util.ColorMagenta
	default:
		return ""
	}
}
