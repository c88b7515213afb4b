package formatter

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/penwyp/go-release-viz/internal/presentation/layout"
)

// SVGFormatter writes a layout result as a standalone SVG document
type SVGFormatter struct {
	style Style
}

func NewSVGFormatter(style Style) *SVGFormatter {
	return &SVGFormatter{style: style}
}

func (f *SVGFormatter) Format(w io.Writer, result *layout.Result) error {
	_, err := io.WriteString(w, f.Render(result))
	return err
}

// Render returns the SVG document for the layout result
func (f *SVGFormatter) Render(result *layout.Result) string {
	width := formatNumber(result.OverallWidth())
	height := formatNumber(result.OverallHeight())

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">
`, width, height, width, height))
	svg.WriteString(f.stylesheet())

	if f.style.Colors.Background != "" {
		svg.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(f.style.Colors.Background)))
	}

	writer := &svgWriter{svg: &svg}
	for _, group := range result.Groups {
		svg.WriteString(fmt.Sprintf(`<g data-role="%s" transform="translate(%s,%s)">`+"\n",
			group.Role, formatNumber(group.DX), formatNumber(group.DY)))
		// svgWriter never fails
		_ = group.Walk(writer)
		svg.WriteString("</g>\n")
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

func (f *SVGFormatter) stylesheet() string {
	c := f.style.Colors
	font := f.style.Font
	return fmt.Sprintf(`<defs>
<style>
text { font-family: %s; font-size: %dpx; fill: %s; }
.%s { stroke: %s; }
.%s[stroke-dasharray] { opacity: .7; }
.%s { stroke: %s; }
.%s { stroke: %s; fill: %s; }
.%s { fill: %s; }
.%s { fill: %s; }
.%s { fill: %s; }
.%s { fill: %s; }
.%s { opacity: .85; }
.%s { font-size: .75em; }
</style>
</defs>
`,
		escapeXML(font.Family), font.Size, escapeXML(c.Text),
		layout.ClassMonthLine, escapeXML(c.MonthLine),
		layout.ClassMonthLine,
		layout.ClassTodayLine, escapeXML(c.TodayLine),
		layout.ClassTodayText, escapeXML(c.TodayText), escapeXML(c.TodayText),
		layout.ClassActive, escapeXML(c.Active),
		layout.ClassLTS, escapeXML(c.LTS),
		layout.ClassUnsupported, escapeXML(c.Unsupported),
		layout.ClassFuture, escapeXML(c.Future),
		layout.ClassPartialOpaque,
		layout.ClassYAxisVersion,
	)
}

// svgWriter emits one element per primitive
type svgWriter struct {
	svg *strings.Builder
}

func (s *svgWriter) VisitRect(r *layout.Rect) error {
	s.svg.WriteString(fmt.Sprintf(`<rect width="%s" height="%s" x="%s" y="%s" rx="%s"%s/>`+"\n",
		formatNumber(r.Width), formatNumber(r.Height), formatNumber(r.X), formatNumber(r.Y),
		formatNumber(r.RX), classAttr(r.Class)))
	return nil
}

func (s *svgWriter) VisitLine(l *layout.Line) error {
	dash := ""
	if l.Dashed {
		dash = ` stroke-dasharray="4"`
	}
	s.svg.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s%s/>`+"\n",
		formatNumber(l.X1), formatNumber(l.Y1), formatNumber(l.X2), formatNumber(l.Y2),
		classAttr(l.Class), dash))
	return nil
}

func (s *svgWriter) VisitText(t *layout.Text) error {
	s.svg.WriteString(fmt.Sprintf(`<text x="%s" y="%s"%s>%s</text>`+"\n",
		formatNumber(t.X), formatNumber(t.Y), classAttr(t.Class), escapeXML(t.Content)))
	return nil
}

func classAttr(class string) string {
	if class == "" {
		return ""
	}
	return fmt.Sprintf(` class="%s"`, escapeXML(class))
}

// formatNumber prints coordinates with at most two decimals
func formatNumber(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// escapeXML escapes special XML characters
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
