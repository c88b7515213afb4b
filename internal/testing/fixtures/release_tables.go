package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReleaseRow is one body row of a release table
type ReleaseRow struct {
	Version    string
	Status     string
	Released   string
	ActiveEnds string
	LTSEnds    string
}

// AngularReleases returns rows modelled on a real release schedule
func AngularReleases() []ReleaseRow {
	return []ReleaseRow{
		{Version: "^16.0.0", Status: "Active", Released: "2023-05-03", ActiveEnds: "2023-11-08", LTSEnds: "2024-11-08"},
		{Version: "^15.0.0", Status: "Active", Released: "2022-11-18", ActiveEnds: "2023-05-03", LTSEnds: "2024-05-18"},
		{Version: "^14.0.0", Status: "LTS", Released: "2022-06-02", ActiveEnds: "2022-11-18", LTSEnds: "2023-11-18"},
		{Version: "^13.0.0", Status: "LTS", Released: "2021-11-04", ActiveEnds: "2022-06-02", LTSEnds: "2023-05-04"},
	}
}

// TableText renders rows as the raw table text: a blank line, header,
// separator, body rows and a trailing blank line.
func TableText(rows []ReleaseRow) string {
	var b strings.Builder
	b.WriteString("\n| Version | Status | Released | Active ends | LTS ends |\n")
	b.WriteString("|:---|:---|:---|:---|:---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", r.Version, r.Status, r.Released, r.ActiveEnds, r.LTSEnds)
	}
	return b.String()
}

// MarkdownDocument embeds the table between prose paragraphs
func MarkdownDocument(rows []ReleaseRow) string {
	return "# Releases\n\nSupported versions:\n" + TableText(rows) + "\nOlder versions are unsupported.\n"
}

// HTMLDocument embeds the table as the text of the given element
func HTMLDocument(rows []ReleaseRow, element string) string {
	return fmt.Sprintf("<html><body>\n<h1>Releases</h1>\n<%s>%s</%s>\n</body></html>\n", element, TableText(rows), element)
}

// DocumentGenerator writes release documents into a directory
type DocumentGenerator struct {
	baseDir string
}

// NewDocumentGenerator creates a new document generator
func NewDocumentGenerator(baseDir string) *DocumentGenerator {
	return &DocumentGenerator{
		baseDir: baseDir,
	}
}

// WriteDocument writes content under the base directory and returns its path
func (g *DocumentGenerator) WriteDocument(name, content string) (string, error) {
	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteTable writes rows as a plain table file
func (g *DocumentGenerator) WriteTable(name string, rows []ReleaseRow) (string, error) {
	return g.WriteDocument(name, TableText(rows))
}

// WriteMarkdown writes rows inside a Markdown document
func (g *DocumentGenerator) WriteMarkdown(name string, rows []ReleaseRow) (string, error) {
	return g.WriteDocument(name, MarkdownDocument(rows))
}

// WriteHTML writes rows inside an HTML page element
func (g *DocumentGenerator) WriteHTML(name string, rows []ReleaseRow, element string) (string, error) {
	return g.WriteDocument(name, HTMLDocument(rows, element))
}

// GetBaseDir returns the base directory
func (g *DocumentGenerator) GetBaseDir() string {
	return g.baseDir
}
