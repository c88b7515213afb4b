package formatter

import (
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-release-viz/internal/core/model"
	"github.com/penwyp/go-release-viz/internal/core/timeline"
	"github.com/penwyp/go-release-viz/internal/presentation/layout"
)

// JSONFormatter writes the layout result and its collection as JSON
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type chartDocument struct {
	Width          float64           `json:"width"`
	Height         float64           `json:"height"`
	ComputedWidth  float64           `json:"computedWidth"`
	ComputedHeight float64           `json:"computedHeight"`
	Now            string            `json:"now"`
	Timeline       timeline.Timeline `json:"timeline"`
	Releases       []releaseDocument `json:"releases"`
	Groups         []groupDocument   `json:"groups"`
}

type releaseDocument struct {
	model.Release
	State string `json:"state"`
}

type groupDocument struct {
	Role      string                   `json:"role"`
	Translate [2]float64               `json:"translate"`
	Children  []map[string]interface{} `json:"children"`
}

func (f *JSONFormatter) Format(w io.Writer, result *layout.Result, now time.Time) error {
	doc := chartDocument{
		Width:          result.OverallWidth(),
		Height:         result.OverallHeight(),
		ComputedWidth:  result.ComputedWidth,
		ComputedHeight: result.ComputedHeight,
		Now:            now.Format(time.RFC3339),
		Timeline:       result.Collection.Timeline,
		Releases:       make([]releaseDocument, 0, result.Collection.Len()),
		Groups:         make([]groupDocument, 0, len(result.Groups)),
	}

	for _, r := range result.Collection.Releases {
		doc.Releases = append(doc.Releases, releaseDocument{Release: r, State: r.State(now).String()})
	}

	for _, group := range result.Groups {
		collector := &jsonCollector{}
		if err := group.Walk(collector); err != nil {
			return err
		}
		doc.Groups = append(doc.Groups, groupDocument{
			Role:      string(group.Role),
			Translate: [2]float64{group.DX, group.DY},
			Children:  collector.children,
		})
	}

	data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// jsonCollector turns primitives into tagged JSON objects
type jsonCollector struct {
	children []map[string]interface{}
}

func (c *jsonCollector) VisitRect(r *layout.Rect) error {
	c.children = append(c.children, map[string]interface{}{
		"type":   r.Kind(),
		"width":  r.Width,
		"height": r.Height,
		"x":      r.X,
		"y":      r.Y,
		"rx":     r.RX,
		"class":  r.Class,
	})
	return nil
}

func (c *jsonCollector) VisitLine(l *layout.Line) error {
	c.children = append(c.children, map[string]interface{}{
		"type":   l.Kind(),
		"x1":     l.X1,
		"y1":     l.Y1,
		"x2":     l.X2,
		"y2":     l.Y2,
		"class":  l.Class,
		"dashed": l.Dashed,
	})
	return nil
}

func (c *jsonCollector) VisitText(t *layout.Text) error {
	c.children = append(c.children, map[string]interface{}{
		"type":    t.Kind(),
		"x":       t.X,
		"y":       t.Y,
		"content": t.Content,
		"class":   t.Class,
	})
	return nil
}
