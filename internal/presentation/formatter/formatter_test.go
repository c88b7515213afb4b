package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-release-viz/internal/core/release"
	"github.com/penwyp/go-release-viz/internal/presentation/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releaseTable = `
| Version | Status | Released   | Active ends | LTS ends   |
|:---     |:---    |:---        |:---         |:---        |
| ^15.0.0 | Active | 2022-11-18 | 2023-05-18  | 2024-05-18 |
| ^14.0.0 | LTS    | 2022-06-02 | 2022-11-18  | 2023-11-18 |
| ^12.0.0 | LTS    | 2021-05-12 | 2021-11-12  | 2022-11-12 |
`

var now = time.Date(2023, time.February, 14, 0, 0, 0, 0, time.UTC)

func buildResult(t *testing.T) *layout.Result {
	t.Helper()
	c, err := release.Build(releaseTable, release.Options{PaddingMonths: 3})
	require.NoError(t, err)
	return layout.Layout(c, 460, 350, now)
}

func TestSVGFormatter(t *testing.T) {
	result := buildResult(t)

	var buf bytes.Buffer
	require.NoError(t, NewSVGFormatter(DefaultStyle()).Format(&buf, result))
	svg := buf.String()

	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, svg, `<svg width="460" height="350" viewBox="0 0 460 350"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Equal(t, len(result.Groups), strings.Count(svg, "<g "))
	assert.Equal(t, strings.Count(svg, "<g "), strings.Count(svg, "</g>"))

	assert.Contains(t, svg, ".rv-active { fill: #07ba60; }")
	assert.Contains(t, svg, ".rv-unsupported { fill: #ff3333; }")
	assert.Contains(t, svg, `<g data-role="today" transform="translate(80,15)">`)
	assert.Contains(t, svg, `<text x="7" y="22.75" class="rv-y-axis-version">^15.0.0</text>`)
	assert.Contains(t, svg, `<rect width="55" height="35" x="0" y="3" rx="5" class="rv-active"/>`)
	assert.Contains(t, svg, `class="rv-unsupported rv-partial-opaque"`)
	assert.Contains(t, svg, `stroke-dasharray="4"`)
	assert.Contains(t, svg, ">2023-2-14</text>")
	assert.NotContains(t, svg, "<rect width=\"100%\"")
}

func TestSVGFormatterOrderFollowsGroups(t *testing.T) {
	svg := NewSVGFormatter(DefaultStyle()).Render(buildResult(t))

	month := strings.Index(svg, `data-role="month-line"`)
	today := strings.Index(svg, `data-role="today"`)
	yAxis := strings.Index(svg, `data-role="y-axis"`)
	bars := strings.Index(svg, `data-role="bars"`)
	legend := strings.Index(svg, `data-role="legend"`)

	assert.True(t, month < today && today < yAxis && yAxis < bars && bars < legend)
}

func TestSVGFormatterStyleOverrides(t *testing.T) {
	style := DefaultStyle()
	style.Colors.Active = "#123456"
	style.Colors.Background = "white"
	style.Font.Family = `"Fira Sans"`

	svg := NewSVGFormatter(style).Render(buildResult(t))
	assert.Contains(t, svg, ".rv-active { fill: #123456; }")
	assert.Contains(t, svg, `<rect width="100%" height="100%" fill="white"/>`)
	assert.Contains(t, svg, "font-family: &quot;Fira Sans&quot;;")
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{80, "80"},
		{22.75, "22.75"},
		{79.19999999999999, "79.2"},
		{11.666666666666666, "11.67"},
		{-0.001, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.in))
		})
	}
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; &quot;c&quot; &apos;d&apos;", escapeXML(`a <b> & "c" 'd'`))
}

func TestJSONFormatter(t *testing.T) {
	result := buildResult(t)

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, result, now))

	var doc struct {
		Width    float64 `json:"width"`
		Height   float64 `json:"height"`
		Releases []struct {
			Version        string `json:"version"`
			State          string `json:"state"`
			ActiveDuration []struct {
				Month int `json:"month"`
				Year  int `json:"year"`
			} `json:"activeDuration"`
		} `json:"releases"`
		Groups []struct {
			Role      string                   `json:"role"`
			Translate []float64                `json:"translate"`
			Children  []map[string]interface{} `json:"children"`
		} `json:"groups"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 460.0, doc.Width)
	assert.Equal(t, 350.0, doc.Height)
	require.Len(t, doc.Releases, 3)
	assert.Equal(t, "^15.0.0", doc.Releases[0].Version)
	assert.Equal(t, "active", doc.Releases[0].State)
	assert.Equal(t, "unsupported", doc.Releases[2].State)
	assert.Equal(t, 11, doc.Releases[0].ActiveDuration[0].Month)

	require.Len(t, doc.Groups, len(result.Groups))
	today := doc.Groups[len(result.Collection.Timeline)]
	assert.Equal(t, "today", today.Role)
	assert.Equal(t, []float64{80, 15}, today.Translate)
	assert.Equal(t, "line", today.Children[0]["type"])
	assert.Equal(t, false, today.Children[0]["dashed"])
	assert.Equal(t, "2023-2-14", today.Children[1]["content"])
}

func TestRows(t *testing.T) {
	result := buildResult(t)
	rows := Rows(result.Collection, now)

	require.Len(t, rows, 3)
	assert.Equal(t, Row{
		Version:    "^15.0.0",
		Status:     "Active",
		Released:   "2022-11-18",
		ActiveEnds: "2023-05-18",
		LTSEnds:    "2024-05-18",
		State:      "active",
	}, rows[0])
	assert.Equal(t, "lts", rows[1].State)
	assert.Equal(t, "unsupported", rows[2].State)
}

func TestTableFormatter(t *testing.T) {
	rows := Rows(buildResult(t).Collection, now)

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(0, false).Format(&buf, rows))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "│ Version │ Status │ Released   │ Active ends │ LTS ends   │ State       │")
	assert.True(t, strings.HasPrefix(lines[2], "├"))
	assert.Contains(t, lines[3], "│ ^15.0.0 │ Active │ 2022-11-18 │ 2023-05-18  │ 2024-05-18 │ active      │")
	assert.True(t, strings.HasPrefix(lines[6], "└"))
	assert.NotContains(t, buf.String(), "\033[")
}

func TestTableFormatterTruncatesAndColors(t *testing.T) {
	rows := []Row{{Version: "^15.0.0-next.1", Status: "Next", State: "future"}}

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(8, true).Format(&buf, rows))
	out := buf.String()

	assert.Contains(t, out, "^15.0.0…")
	assert.NotContains(t, out, "next.1")
	assert.Contains(t, out, "\033[35m")
}

func TestCSVFormatter(t *testing.T) {
	rows := Rows(buildResult(t).Collection, now)

	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter().Format(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Version", "Status", "Released", "Active ends", "LTS ends", "State"}, records[0])
	assert.Equal(t, []string{"^14.0.0", "LTS", "2022-06-02", "2022-11-18", "2023-11-18", "lts"}, records[2])
}
