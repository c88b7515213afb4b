package parser

import (
	"bytes"
	"path/filepath"
	"strings"
)

// DocumentKind tells how the table text is embedded in an input document
type DocumentKind string

const (
	KindRaw      DocumentKind = "raw"
	KindMarkdown DocumentKind = "markdown"
	KindHTML     DocumentKind = "html"
)

// KindForPath guesses the document kind from the file extension
func KindForPath(path string) DocumentKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return KindHTML
	case ".md", ".markdown":
		return KindMarkdown
	default:
		return KindRaw
	}
}

// ExtractTable returns the raw table text held by a document
func ExtractTable(content []byte, kind DocumentKind, selector string) (string, error) {
	switch kind {
	case KindHTML:
		return ExtractElementText(bytes.NewReader(content), selector)
	case KindMarkdown:
		return ExtractMarkdownTable(string(content))
	default:
		return string(content), nil
	}
}
