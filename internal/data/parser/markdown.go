package parser

import (
	"strings"

	"github.com/penwyp/go-release-viz/internal/core/model"
)

// ExtractMarkdownTable returns the first pipe table of a markdown document,
// framed by one empty line above and below so ParseTable can strip them.
func ExtractMarkdownTable(doc string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n")

	start := -1
	end := len(lines)
	for i, line := range lines {
		isRow := strings.HasPrefix(strings.TrimSpace(line), "|")
		if start < 0 && isRow {
			start = i
		} else if start >= 0 && !isRow {
			end = i
			break
		}
	}

	if start < 0 {
		return "", &model.ParseError{Reason: "document contains no pipe table"}
	}
	return "\n" + strings.Join(lines[start:end], "\n") + "\n", nil
}
