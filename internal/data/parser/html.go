package parser

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/penwyp/go-release-viz/internal/core/model"
)

// DefaultSelector is the element that carries the table in documentation pages
const DefaultSelector = "aio-release-viz"

// ExtractElementText returns the text content of the first element matching
// selector. The element's own leading and trailing lines frame the table.
func ExtractElementText(r io.Reader, selector string) (string, error) {
	if selector == "" {
		selector = DefaultSelector
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML document: %w", err)
	}

	element := doc.Find(selector).First()
	if element.Length() == 0 {
		return "", &model.ParseError{Reason: fmt.Sprintf("no element matches selector %q", selector)}
	}
	return element.Text(), nil
}
