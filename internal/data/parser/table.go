package parser

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-release-viz/internal/core/model"
	"github.com/penwyp/go-release-viz/internal/util"
)

// ParseTable turns the text of a pipe table into releases, one per body row
// in table order.
//
// The first and last lines of raw belong to the surrounding markup and are
// dropped. Of the remaining lines the first is the header, the second is the
// separator (never inspected) and the rest are body rows. Blank body lines are
// skipped; a body row whose cell count differs from the header fails the parse.
func ParseTable(raw string) ([]model.Release, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if len(lines) < 4 {
		return nil, &model.ParseError{Reason: "table needs a header row and a separator row"}
	}

	rows := lines[1 : len(lines)-1]
	columns, err := resolveHeader(rows[0])
	if err != nil {
		return nil, err
	}

	releases := make([]model.Release, 0, len(rows)-2)
	for i := 2; i < len(rows); i++ {
		lineNo := i + 2
		if strings.TrimSpace(rows[i]) == "" {
			continue
		}

		cells := SplitRow(rows[i])
		if len(cells) != len(columns) {
			return nil, &model.ParseError{
				Line:   lineNo,
				Reason: fmt.Sprintf("expected %d cells, found %d", len(columns), len(cells)),
			}
		}

		var release model.Release
		for c, field := range columns {
			release.Set(field, cells[c])
		}
		releases = append(releases, release)
	}

	if len(releases) == 0 {
		return nil, &model.ParseError{Reason: "table has no release rows"}
	}

	util.LogDebug("parsed release table", util.F("rows", len(releases)), util.F("columns", len(columns)))
	return releases, nil
}

// resolveHeader maps the header cells to fields once, so body rows can be
// assigned positionally.
func resolveHeader(line string) ([]model.Field, error) {
	cells := SplitRow(line)
	columns := make([]model.Field, len(cells))
	known := 0
	for i, cell := range cells {
		columns[i] = model.FieldFromHeader(cell)
		if columns[i] != model.FieldUnknown {
			known++
		}
	}

	if known == 0 {
		return nil, &model.ParseError{Line: 2, Reason: fmt.Sprintf("header %q has no release columns", strings.TrimSpace(line))}
	}
	return columns, nil
}

// SplitRow splits a pipe-delimited row into trimmed cells. The empty cells
// outside the outer pipes are dropped; empty cells between pipes are kept.
func SplitRow(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

// FormatTable writes releases back as a framed pipe table that ParseTable accepts
func FormatTable(releases []model.Release) string {
	var b strings.Builder
	b.WriteString("\n")

	headers := make([]string, len(model.Fields))
	separators := make([]string, len(model.Fields))
	for i, field := range model.Fields {
		headers[i] = field.Header()
		separators[i] = ":---"
	}
	writeRow(&b, headers)
	writeRow(&b, separators)

	for i := range releases {
		cells := make([]string, len(model.Fields))
		for c, field := range model.Fields {
			cells[c] = releases[i].Get(field)
		}
		writeRow(&b, cells)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}
